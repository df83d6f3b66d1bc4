package util

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rpmellow/notepad/internal/model"
)

const metadataFileName = "metadata.json"

// GenerateMetadata walks the data dir and records each file's last
// modification time, keyed by relative path.
func GenerateMetadata(dir string) (map[string]string, error) {
	metadata := make(map[string]string)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Printf("⚠️ Failed to access path: %s (%v)", path, err)
			return nil
		}

		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			log.Printf("⚠️ Failed to get relative path for: %s (%v)", path, err)
			return nil
		}

		// metadata.json itself is not part of the backup set
		if relPath == metadataFileName {
			return nil
		}

		metadata[relPath] = info.ModTime().Format(time.RFC3339)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("❌ Failed to scan directory: %w", err)
	}

	return metadata, nil
}

// SaveMetadata writes metadata.json locally.
func SaveMetadata(metadataPath string, metadata map[string]string) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("❌ Failed to marshal metadata.json: %w", err)
	}

	err = os.WriteFile(metadataPath, data, 0644)
	if err != nil {
		return fmt.Errorf("❌ Failed to write metadata.json: %w", err)
	}

	return nil
}

// LoadMetadata loads metadata.json; a missing file yields an empty map.
func LoadMetadata(metadataPath string) (map[string]string, error) {
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("❌ Failed to read metadata.json: %w", err)
	}

	var metadata map[string]string
	err = json.Unmarshal(data, &metadata)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to parse metadata.json: %w", err)
	}

	return metadata, nil
}

func UploadMetadataToS3(s3Client *s3.Client, config model.Config) error {
	metadataPath := filepath.Join(config.DataDir, metadataFileName)
	s3Key := "data/" + metadataFileName

	file, err := os.Open(metadataPath)
	if err != nil {
		return fmt.Errorf("❌ Failed to open %s: %w", metadataPath, err)
	}
	defer file.Close()

	log.Printf("🔄 Uploading %s to S3...", s3Key)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(config.Sync.Bucket),
		Key:    aws.String(s3Key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("❌ Failed to upload %s to S3: %w", s3Key, err)
	}

	log.Printf("✅ %s uploaded to S3!", s3Key)
	return nil
}

func DownloadMetadataFromS3(s3Client *s3.Client, config model.Config) (map[string]string, error) {
	metadataPath := filepath.Join(config.DataDir, metadataFileName)
	s3Key := "data/" + metadataFileName

	resp, err := s3Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(config.Sync.Bucket),
		Key:    aws.String(s3Key),
	})
	if err != nil {
		if isNotFoundErr(err) {
			log.Printf("⚠️ No %s found on S3, returning empty metadata.", s3Key)
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("❌ Failed to download %s from S3: %w", s3Key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to read %s from S3: %w", s3Key, err)
	}

	err = os.WriteFile(metadataPath, data, 0644)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to save %s: %w", metadataPath, err)
	}

	log.Printf("✅ %s downloaded from S3!", s3Key)

	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to load downloaded metadata: %w", err)
	}

	return metadata, nil
}

// DetectChanges compares local and remote metadata and lists the files
// that need to move in the given direction ("s3" for pull, "local" for
// push). One second of slack absorbs filesystem timestamp rounding.
func DetectChanges(localMeta, remoteMeta map[string]string, source string) []string {
	var filesToSync []string

	for file, remoteTimeStr := range remoteMeta {
		if file == metadataFileName {
			continue
		}

		localTimeStr, exists := localMeta[file]

		if !exists {
			log.Printf("📌 File missing locally, adding to sync (pull): %s", file)
			filesToSync = append(filesToSync, file)
			continue
		}

		remoteTime, err := time.Parse(time.RFC3339, remoteTimeStr)
		if err != nil {
			log.Printf("⚠️ Failed to parse remote timestamp for %s: %v", file, err)
			continue
		}

		localTime, err := time.Parse(time.RFC3339, localTimeStr)
		if err != nil {
			log.Printf("⚠️ Failed to parse local timestamp for %s: %v", file, err)
			continue
		}

		if source == "s3" && remoteTime.After(localTime.Add(1*time.Second)) {
			log.Printf("📌 Newer version on S3, adding to sync (pull): %s", file)
			filesToSync = append(filesToSync, file)
		}

		if source == "local" && localTime.After(remoteTime.Add(1*time.Second)) {
			log.Printf("📌 Newer version locally, adding to sync (push): %s", file)
			filesToSync = append(filesToSync, file)
		}
	}

	if source == "local" {
		for file := range localMeta {
			if _, exists := remoteMeta[file]; !exists {
				log.Printf("📌 File missing on S3, adding to sync (push): %s", file)
				filesToSync = append(filesToSync, file)
			}
		}
	}

	return filesToSync
}

// SyncFilesToS3 moves the listed files in the given direction.
func SyncFilesToS3(config model.Config, direction string, files []string) error {
	s3Client, err := NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	for _, file := range files {
		localPath := filepath.Join(config.DataDir, file)
		s3Key := "data/" + file

		switch direction {
		case "push":
			if err := UploadToS3(s3Client, config.Sync.Bucket, localPath, s3Key); err != nil {
				return err
			}
		case "pull":
			if err := DownloadFromS3(s3Client, config.Sync.Bucket, s3Key, localPath); err != nil {
				return err
			}
		default:
			return fmt.Errorf("❌ Unknown sync direction: %s", direction)
		}
	}

	return nil
}
