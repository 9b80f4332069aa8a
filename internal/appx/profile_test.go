// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"os"
	"strings"
	"testing"

	"winpack-cli/internal/testutil"
)

func TestProfile(t *testing.T) {
	t.Parallel()

	single, split := string(Profile(false)), string(Profile(true))

	if strings.Contains(single, "<packaging>") {
		t.Error("single-file profile declares resource packages")
	}
	for _, qualifier := range []string{"Language", "Scale", "DXFeatureLevel"} {
		if !strings.Contains(split, `<autoResourcePackage qualifier="`+qualifier+`"/>`) {
			t.Errorf("split profile does not split on %s", qualifier)
		}
	}
}

func TestProfilePath_TemporaryCopy(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil, &testutil.FakeRunner{})

	path, release, err := svc.profilePath(true)
	if err != nil {
		t.Fatalf("profilePath() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read profile: %v", err)
	}
	if string(data) != string(Profile(true)) {
		t.Error("temporary profile differs from the embedded one")
	}

	release()
	if exists(path) {
		t.Error("release did not remove the temporary profile")
	}
}
