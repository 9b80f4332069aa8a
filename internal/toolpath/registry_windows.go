// SPDX-License-Identifier: MPL-2.0

//go:build windows

package toolpath

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	kitsRegistryKey   = `SOFTWARE\Microsoft\Windows Kits\Installed Roots`
	kitsRegistryValue = "KitsRoot10"
)

// registryKitsRoot reads the Windows 10 SDK root from the registry, checking
// the native view before the 32-bit view.
func registryKitsRoot() (string, error) {
	var lastErr error
	for _, view := range []uint32{0, registry.WOW64_32KEY} {
		root, err := readKitsRoot(view)
		if err == nil {
			return root, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func readKitsRoot(view uint32) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, kitsRegistryKey, registry.QUERY_VALUE|view)
	if err != nil {
		return "", fmt.Errorf("open HKLM\\%s: %w", kitsRegistryKey, err)
	}
	defer func() { _ = key.Close() }()

	root, _, err := key.GetStringValue(kitsRegistryValue)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", kitsRegistryValue, err)
	}
	return root, nil
}
