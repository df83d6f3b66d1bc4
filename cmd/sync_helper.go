package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/rpmellow/notepad/internal/model"
	"github.com/rpmellow/notepad/internal/util"
)

// SyncWithS3 runs a metadata-diff backup of the data directory: only
// files whose timestamps differ are moved.
func SyncWithS3(config model.Config, direction string) error {
	if !config.Sync.Enable {
		return fmt.Errorf("❌ Sync is disabled in config.yaml")
	}

	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	metadataPath := filepath.Join(config.DataDir, "metadata.json")

	switch direction {
	case "pull":
		log.Println("🔄 Downloading metadata from S3...")

		// Snapshot local state before the download overwrites metadata.json
		localMetadata, err := util.GenerateMetadata(config.DataDir)
		if err != nil {
			return fmt.Errorf("❌ Failed to generate metadata.json: %w", err)
		}

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata.json from S3: %w", err)
		}

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "s3")
		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Downloading changed files from S3...")
			if err := util.SyncFilesToS3(config, "pull", fileList); err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Saving updated metadata...")
		if err := util.SaveMetadata(metadataPath, remoteMetadata); err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil

	case "push":
		log.Println("🔄 Generating metadata for push...")

		localMetadata, err := util.GenerateMetadata(config.DataDir)
		if err != nil {
			return fmt.Errorf("❌ Failed to generate metadata.json: %w", err)
		}

		if err := util.SaveMetadata(metadataPath, localMetadata); err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata.json from S3: %w", err)
		}

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "local")
		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Uploading changed files to S3...")
			if err := util.SyncFilesToS3(config, "push", fileList); err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Uploading metadata to S3...")
		if err := util.SaveMetadata(metadataPath, localMetadata); err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}
		if err := util.UploadMetadataToS3(s3Client, config); err != nil {
			return fmt.Errorf("❌ Failed to upload metadata.json: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil
	}

	return fmt.Errorf("❌ Unknown sync direction: %s", direction)
}

// ShowSyncStatus lists the files that a pull would update.
func ShowSyncStatus(config model.Config) error {
	if !config.Sync.Enable {
		return fmt.Errorf("❌ Sync is disabled in config.yaml")
	}

	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	localMetadata, _ := util.LoadMetadata(filepath.Join(config.DataDir, "metadata.json"))

	remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
	if err != nil {
		return err
	}

	fileList := util.DetectChanges(localMetadata, remoteMetadata, "s3")

	log.Println("📌 Files to be updated from S3:")
	for _, file := range fileList {
		log.Println("   -", file)
	}

	return nil
}
