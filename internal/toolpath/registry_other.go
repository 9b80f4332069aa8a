// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package toolpath

func registryKitsRoot() (string, error) {
	return "", ErrRegistryUnavailable
}
