package shoutrrr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_addDefaultTitle(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address        string
		defaultTitle   string
		updatedAddress string
	}{
		"no existing title": {
			address:        "slack://token@channel",
			defaultTitle:   "FreeIPA DNS record",
			updatedAddress: "slack://token@channel?title=FreeIPA+DNS+record",
		},
		"existing title is kept": {
			address:        "slack://token@channel?title=existing",
			defaultTitle:   "FreeIPA DNS record",
			updatedAddress: "slack://token@channel?title=existing",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			updatedAddress := addDefaultTitle(testCase.address, testCase.defaultTitle)

			assert.Equal(t, testCase.updatedAddress, updatedAddress)
		})
	}
}
