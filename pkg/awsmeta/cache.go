package awsmeta

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	cacheDirName     = "aws-list-all"
	servicesFileName = "services.json"
)

// CacheDir returns the OS-dependent cache directory for refreshed metadata,
// e.g. ~/.cache/aws-list-all on Linux.
func CacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}
	return filepath.Join(base, cacheDirName), nil
}

func cachedServicesPath() (string, error) {
	dir, err := CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, servicesFileName), nil
}

// RecreateCaches (re-)creates the on-disk metadata cache from the packaged
// descriptors. The AWS service and endpoint lists change over time, so the
// cache exists as the mutable copy an operator can refresh or hand-edit
// without rebuilding the binary.
//
// When updatePackaged is true the packaged data file in the working tree is
// rewritten instead of the cache. Use this only when running from a source
// checkout.
func RecreateCaches(updatePackaged bool) (string, error) {
	if updatePackaged {
		target := filepath.Join("pkg", "awsmeta", "data", servicesFileName)
		if _, err := os.Stat(filepath.Dir(target)); err != nil {
			return "", fmt.Errorf("packaged data dir not found (not a source checkout?): %w", err)
		}
		if err := os.WriteFile(target, packagedServices, 0o644); err != nil {
			return "", fmt.Errorf("update packaged values: %w", err)
		}
		return target, nil
	}

	dir, err := CacheDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	target := filepath.Join(dir, servicesFileName)
	if err := os.WriteFile(target, packagedServices, 0o644); err != nil {
		return "", fmt.Errorf("write services cache: %w", err)
	}
	return target, nil
}
