// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"strings"
)

// invalidNameChars may not appear in a Windows file or folder name.
const invalidNameChars = `<>:"/\|?*`

var (
	// ErrInvalidFileName is returned by CheckWindowsFileName for names
	// Windows rejects outright.
	ErrInvalidFileName = errors.New("invalid Windows file name")
	// ErrReservedFileName is returned by CheckWindowsFileName for device names.
	ErrReservedFileName = errors.New("reserved Windows device name")

	// reservedNames are device names; an extension does not lift the
	// reservation, so "con.txt" is reserved too.
	reservedNames = map[string]bool{
		"CON": true, "PRN": true, "AUX": true, "NUL": true,
		"COM1": true, "COM2": true, "COM3": true, "COM4": true,
		"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
		"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
		"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
	}
)

// IsWindowsReservedName reports whether name, with or without an extension,
// is a Windows device name.
func IsWindowsReservedName(name string) bool {
	stem, _, _ := strings.Cut(strings.ToUpper(name), ".")
	return reservedNames[stem]
}

// CheckWindowsFileName returns nil if name can be used as a single path
// element on Windows. Package content is extracted and packed on Windows
// hosts, so package names are held to these rules on every platform.
func CheckWindowsFileName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(invalidNameChars, r) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidFileName, name, r)
		}
	}
	if last := name[len(name)-1]; last == '.' || last == ' ' {
		return fmt.Errorf("%w: %q ends with %q", ErrInvalidFileName, name, last)
	}
	if IsWindowsReservedName(name) {
		return fmt.Errorf("%w: %q", ErrReservedFileName, name)
	}
	return nil
}
