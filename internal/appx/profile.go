// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"embed"
	"fmt"
	"os"
)

//go:embed assets/priconfig.single.xml assets/priconfig.split.xml
var profiles embed.FS

const (
	singleProfile = "assets/priconfig.single.xml"
	splitProfile  = "assets/priconfig.split.xml"
)

// Profile returns the built-in makepri configuration: the split-by-qualifier
// profile when split is set, the single-file profile otherwise.
func Profile(split bool) []byte {
	name := singleProfile
	if split {
		name = splitProfile
	}
	data, err := profiles.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("embedded profile %s: %v", name, err))
	}
	return data
}

// profilePath returns a file path makepri can read the selected profile from,
// and a release func that removes any temporary copy.
func (s *Service) profilePath(split bool) (string, func(), error) {
	if s.profileFile != "" {
		return s.profileFile, func() {}, nil
	}

	f, err := os.CreateTemp("", "priconfig-*.xml")
	if err != nil {
		return "", nil, fmt.Errorf("create indexing profile: %w", err)
	}
	path := f.Name()
	release := func() { _ = os.Remove(path) }

	if _, err := f.Write(Profile(split)); err != nil {
		_ = f.Close()
		release()
		return "", nil, fmt.Errorf("write indexing profile: %w", err)
	}
	if err := f.Close(); err != nil {
		release()
		return "", nil, fmt.Errorf("write indexing profile: %w", err)
	}
	return path, release, nil
}
