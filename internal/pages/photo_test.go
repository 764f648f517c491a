package pages_test

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/pages"
)

func imageBlocks(t *testing.T, tab *pages.PhotoTab) []playwright.Locator {
	t.Helper()

	blocks, err := tab.ImageBlocks()
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	return blocks
}

// Scenario: Uploading, moving and deleting photos
//
//	Given the photo tab with empty image slots
//	When two photos are uploaded
//	Then the first two slots hold images
//	When the second image is dragged onto the first
//	Then their order is swapped
//	When the first image is deleted
//	Then only one slot holds an image
func TestPhotoTab_UploadMoveDelete(t *testing.T) {
	photos, err := fixtures.WritePhotos(t.TempDir())
	require.NoError(t, err)

	env := openFixture(t, "photo.html", firstSource{}, nil)
	tab := pages.NewPhotoTab(env)

	require.NoError(t, tab.AddImage(imageBlocks(t, tab)[0], photos.Valid[0]))
	require.NoError(t, tab.AddImage(imageBlocks(t, tab)[1], photos.Valid[1]))

	blocks := imageBlocks(t, tab)
	for i, block := range blocks[:2] {
		has, err := tab.HasImage(block)
		require.NoError(t, err)
		assert.True(t, has, "block %d", i)
	}
	has, err := tab.HasImage(blocks[2])
	require.NoError(t, err)
	assert.False(t, has)

	first, err := tab.UnitImage(blocks[0]).InnerText()
	require.NoError(t, err)
	require.NoError(t, tab.MoveImage(blocks[1], blocks[0]))
	require.NoError(t, env.Check.NotText(tab.UnitImage(imageBlocks(t, tab)[0]), "first image", first))

	require.NoError(t, tab.DeleteImage(imageBlocks(t, tab)[0]))
	require.NoError(t, env.Check.Count(env.Find.TestID("unitImage"), "unit images", 1))
}

func TestPhotoTab_RejectedUploads(t *testing.T) {
	photos, err := fixtures.WritePhotos(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name    string
		upload  []string
		message string
		close   func(tab *pages.PhotoTab) error
	}{
		{
			name:    "same file twice",
			upload:  []string{photos.Valid[0], photos.Valid[0]},
			message: fixtures.Photo.DuplicatePhotoErrorMessage,
			close:   (*pages.PhotoTab).ClickPopupOk,
		},
		{
			name:    "invalid format",
			upload:  []string{photos.Invalid},
			message: fixtures.Photo.InvalidPhotoErrorMessage,
			close:   (*pages.PhotoTab).ClickPopupClose,
		},
		{
			name:    "too big",
			upload:  []string{photos.Big},
			message: fixtures.Photo.InvalidPhotoErrorMessage,
			close:   (*pages.PhotoTab).ClickPopupOk,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := openFixture(t, "photo.html", firstSource{}, nil)
			tab := pages.NewPhotoTab(env)

			for _, path := range tt.upload {
				blocks := imageBlocks(t, tab)
				var next playwright.Locator
				for _, block := range blocks {
					has, err := tab.HasImage(block)
					require.NoError(t, err)
					if !has {
						next = block
						break
					}
				}
				require.NotNil(t, next)
				require.NoError(t, tab.AddImage(next, path))
			}

			require.NoError(t, env.Check.Visible(tab.Popup(), "photo popup"))
			require.NoError(t, env.Check.Text(tab.PopupMessage(), "photo popup message", tt.message))
			require.NoError(t, tt.close(tab))
			require.NoError(t, env.Check.Hidden(tab.Popup(), "photo popup"))
		})
	}
}
