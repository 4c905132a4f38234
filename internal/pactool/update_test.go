package pactool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAURHelper_PreferenceOrder(t *testing.T) {
	root := withRoot(t)

	_, ok := findAURHelper()
	assert.False(t, ok)

	touch(t, root, "bin/paru")
	helper, ok := findAURHelper()
	assert.True(t, ok)
	assert.Equal(t, "paru", helper)

	touch(t, root, "bin/pikaur")
	helper, _ = findAURHelper()
	assert.Equal(t, "pikaur", helper)

	touch(t, root, "bin/yay")
	touch(t, root, "bin/trizen")
	helper, _ = findAURHelper()
	assert.Equal(t, "yay", helper)
}

func TestAURUpdate_RunsHelperWithoutArguments(t *testing.T) {
	root := withRoot(t)
	touch(t, root, "bin/trizen")
	s, runner, stdout, _ := newTestSession("")

	s.aurUpdate()

	assert.Equal(t, []call{{Name: "trizen"}}, runner.calls)
	assert.Contains(t, stdout.String(), "Updating all packages and AUR packages...")
	assert.Contains(t, stdout.String(), "Finished.")
}

func TestAURUpdate_NoHelper(t *testing.T) {
	withRoot(t)
	s, runner, _, stderr := newTestSession("")

	s.aurUpdate()

	assert.Empty(t, runner.calls)
	assert.Contains(t, stderr.String(), "No AUR helper found, skipping...")
}

func TestFullUpdateAndPacdiff(t *testing.T) {
	s, runner, _, _ := newTestSession("")

	s.fullUpdate()
	s.checkPacdiffs()

	assert.Equal(t, []string{"pacman -Syu", "pacdiff"}, runner.ran())
}
