package e2e

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/pages"
	"github.com/rentzila/e2e/internal/scenario"
)

// dismissals are the ways an upload error popup can be closed
var dismissals = []struct {
	name    string
	dismiss func(s *scenario.Session) error
}{
	{
		name:    "close icon",
		dismiss: func(s *scenario.Session) error { return s.Photo.ClickPopupClose() },
	},
	{
		name: "ok button",
		dismiss: func(s *scenario.Session) error {
			if err := s.Check.Text(s.Photo.PopupOkButton(), "popup ok button", fixtures.Photo.PopupOkButtonText); err != nil {
				return err
			}
			return s.Photo.ClickPopupOk()
		},
	},
	{
		name:    "next button",
		dismiss: func(s *scenario.Session) error { return s.Wizard.ClickNext() },
	},
}

// imageBlocks returns the photo slots
func imageBlocks(t *testing.T, s *scenario.Session) []playwright.Locator {
	t.Helper()

	blocks, err := s.Photo.ImageBlocks()
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	return blocks
}

// requireImages checks which slots hold an image
func requireImages(t *testing.T, s *scenario.Session, blocks []playwright.Locator, filled int) {
	t.Helper()

	for i, block := range blocks {
		has, err := s.Photo.HasImage(block)
		require.NoError(t, err)
		assert.Equal(t, i < filled, has, subject("image block", i))
	}
}

// uploadValid fills the first slots with every valid photo
func uploadValid(t *testing.T, s *scenario.Session, blocks []playwright.Locator) {
	t.Helper()

	require.GreaterOrEqual(t, len(blocks), len(photos.Valid))
	for i, path := range photos.Valid {
		require.NoError(t, s.Photo.AddImage(blocks[i], path))
		has, err := s.Photo.HasImage(blocks[i])
		require.NoError(t, err)
		assert.True(t, has, subject("image block", i))
	}
}

// requirePhotoHeader checks the upload paragraph and its instructions
func requirePhotoHeader(t *testing.T, s *scenario.Session) {
	t.Helper()

	require.NoError(t, s.Check.Text(s.Photo.Paragraph(), "photo paragraph", fixtures.Photo.Paragraph))
	require.NoError(t, s.Check.Text(s.Photo.Description(), "photo description", fixtures.Photo.ImageUnitDescription))
}

// TestPhoto_SameImage tests uploading one file twice
// Feature: Duplicate photo
//
//	As an owner
//	I want to be stopped from uploading the same photo twice
//	So that my listing has no repeated images
func TestPhoto_SameImage(t *testing.T) {
	s := onPhotos(t)
	blocks := imageBlocks(t, s)

	for _, d := range dismissals {
		t.Run(d.name, func(t *testing.T) {
			// When I upload the same photo into two slots
			require.NoError(t, s.Photo.AddImage(blocks[0], photos.Valid[0]))
			require.NoError(t, s.Photo.AddImage(blocks[1], photos.Valid[0]))

			// Then the duplicate is refused
			require.NoError(t, s.Check.Visible(s.Photo.Popup(), "photo popup"))
			require.NoError(t, s.Check.Text(s.Photo.PopupMessage(), "popup message", fixtures.Photo.DuplicatePhotoErrorMessage))

			// When I dismiss the popup
			require.NoError(t, d.dismiss(s))

			// Then only the first copy is kept
			require.NoError(t, s.Check.Hidden(s.Photo.Popup(), "photo popup"))
			requireImages(t, s, blocks, 1)
			require.NoError(t, s.Photo.DeleteImage(blocks[0]))
		})
	}
}

// TestPhoto_InvalidFile tests uploading a file of the wrong type or size
// Feature: Photo restrictions
//
//	As an owner
//	I want unsupported files rejected
//	So that my listing only shows valid photos
func TestPhoto_InvalidFile(t *testing.T) {
	s := onPhotos(t)
	blocks := imageBlocks(t, s)

	files := map[string]string{
		"invalid format": photos.Invalid,
		"too big":        photos.Big,
	}

	for name, path := range files {
		for _, d := range dismissals {
			t.Run(name+" "+d.name, func(t *testing.T) {
				// When I upload the file
				require.NoError(t, s.Photo.AddImage(blocks[0], path))

				// Then it is refused
				require.NoError(t, s.Check.Visible(s.Photo.Popup(), "photo popup"))
				require.NoError(t, s.Check.Text(s.Photo.PopupMessage(), "popup message", fixtures.Photo.InvalidPhotoErrorMessage))

				// When I dismiss the popup
				require.NoError(t, d.dismiss(s))

				// Then no slot holds an image
				require.NoError(t, s.Check.Hidden(s.Photo.Popup(), "photo popup"))
				requireImages(t, s, blocks, 0)
			})
		}
	}
}

// TestPhoto_Back tests returning to the general info tab
// Feature: Wizard back navigation
//
//	As an owner
//	I want to go back one step
//	So that I can fix the general info
func TestPhoto_Back(t *testing.T) {
	s := onPhotos(t)

	// When I go back
	require.NoError(t, s.Check.Visible(s.Wizard.PrevButton(), "back button"))
	require.NoError(t, s.Wizard.ClickPrev())

	// Then the general info tab is selected
	require.NoError(t, s.Check.Text(s.GeneralInfo.MainTitle(), "main title", fixtures.GeneralInfo.MainTitle))
	require.NoError(t, s.Wizard.VerifyTabs(pages.StepGeneralInfo))
}

// TestPhoto_Next tests moving on to the services tab
// Feature: Photo required
//
//	As an owner
//	I want to be told a photo is required
//	So that my listing is never left without one
func TestPhoto_Next(t *testing.T) {
	s := onPhotos(t)

	// When I move on without a photo
	require.NoError(t, s.Check.Visible(s.Wizard.NextButton(), "next button"))
	require.NoError(t, s.Wizard.ClickNext())

	// Then I stay on the photo tab with the instructions in red
	require.NoError(t, s.Check.Text(s.Photo.Title(), "photo title", fixtures.Photo.Title))
	require.NoError(t, s.Photo.DescriptionIsRed())

	// When I upload a photo and move on
	// Then the services tab is selected
	require.NoError(t, s.CompletePhotos(photos.Valid[:1]))
}

// TestPhoto_Upload tests uploading several photos
// Feature: Photo upload
//
//	As an owner
//	I want to upload several photos
//	So that customers see my unit from every side
func TestPhoto_Upload(t *testing.T) {
	s := onPhotos(t)
	requirePhotoHeader(t, s)
	blocks := imageBlocks(t, s)

	// When I upload every photo
	uploadValid(t, s, blocks)

	// Then only those slots hold images
	requireImages(t, s, blocks, len(photos.Valid))
}

// TestPhoto_Move tests reordering photos
// Feature: Photo order
//
//	As an owner
//	I want to drag photos around
//	So that the best one comes first
func TestPhoto_Move(t *testing.T) {
	s := onPhotos(t)
	requirePhotoHeader(t, s)
	blocks := imageBlocks(t, s)

	// Given I uploaded every photo
	uploadValid(t, s, blocks)
	first, err := s.Photo.UnitImage(blocks[0]).GetAttribute("src")
	require.NoError(t, err)
	second, err := s.Photo.UnitImage(blocks[1]).GetAttribute("src")
	require.NoError(t, err)

	// When I drag the second photo onto the first
	require.NoError(t, s.Photo.MoveImage(blocks[1], blocks[0]))

	// Then they swap places
	require.NoError(t, s.Check.Attribute(s.Photo.UnitImage(blocks[0]), "first image", "src", second))
	require.NoError(t, s.Check.Attribute(s.Photo.UnitImage(blocks[1]), "second image", "src", first))
}

// TestPhoto_Delete tests removing photos
// Feature: Photo removal
//
//	As an owner
//	I want to delete photos
//	So that I can replace them
func TestPhoto_Delete(t *testing.T) {
	s := onPhotos(t)
	requirePhotoHeader(t, s)
	blocks := imageBlocks(t, s)

	// Given I uploaded every photo
	uploadValid(t, s, blocks)

	// When I delete the first photo until none is left
	for range photos.Valid {
		require.NoError(t, s.Photo.DeleteImage(blocks[0]))
	}

	// Then no slot holds an image
	requireImages(t, s, blocks, 0)
}
