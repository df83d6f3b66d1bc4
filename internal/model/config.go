package model

type Config struct {
	DataDir string `yaml:"data_dir"`
	Editor  string `yaml:"editor"`
	Notify  struct {
		Enable   bool   `yaml:"enable"`
		Command  string `yaml:"command"`
		Interval int    `yaml:"interval"` // watch poll interval in seconds
	} `yaml:"notify"`
	Share struct {
		Command string `yaml:"command"` // empty means print to stdout
	} `yaml:"share"`
	Sync struct {
		Enable     bool   `yaml:"enable"`
		Platform   string `yaml:"platform"`
		Bucket     string `yaml:"bucket"`
		AWSProfile string `yaml:"aws_profile"`
		AWSRegion  string `yaml:"aws_region"`
	} `yaml:"sync"`
}

func DefaultConfig() Config {
	config := Config{
		DataDir: "~/.config/notepad/data",
		Editor:  "vim",
	}
	config.Notify.Enable = true
	config.Notify.Command = "notify-send"
	config.Notify.Interval = 30
	return config
}
