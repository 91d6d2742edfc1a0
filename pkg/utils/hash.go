package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// HashString computes the SHA-256 hash of a string as a hex digest.
func HashString(content string) string {
	hash := sha256.New()
	hash.Write([]byte(content))
	return hex.EncodeToString(hash.Sum(nil))
}

// HashFile computes the SHA-256 hash of a file's content as a hex digest.
func HashFile(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
