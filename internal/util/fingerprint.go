package util

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// CalculateFileFingerprint returns the CRC32 of the whole file. htoprc files
// are small, so reading all of it is fine.
func CalculateFileFingerprint(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := crc32.NewIEEE()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("%08x", hash.Sum32()), nil
}

// FingerprintBytes returns the CRC32 of data in the same form as CalculateFileFingerprint
func FingerprintBytes(data []byte) string {
	return fmt.Sprintf("%08x", crc32.ChecksumIEEE(data))
}
