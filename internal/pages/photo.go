package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// PhotoTab is the second wizard tab with its twelve image slots
type PhotoTab struct {
	env Env
}

// NewPhotoTab creates a PhotoTab
func NewPhotoTab(env Env) *PhotoTab {
	return &PhotoTab{env: env}
}

func (t *PhotoTab) Title() playwright.Locator {
	return t.env.Find.ClassFragment("ImagesUnitFlow_title")
}

func (t *PhotoTab) Popup() playwright.Locator {
	return t.env.Find.ClassFragment("PopupLayout_content")
}

func (t *PhotoTab) PopupMessage() playwright.Locator {
	return t.env.Find.Within(t.Popup()).TestID("errorPopup")
}

func (t *PhotoTab) PopupCloseIcon() playwright.Locator {
	return t.env.Find.Within(t.Popup()).TestID("closeIcon")
}

func (t *PhotoTab) PopupOkButton() playwright.Locator {
	return t.env.Find.Within(t.Popup()).ClassFragment("ItemButtons_darkBlueBtn")
}

func (t *PhotoTab) Paragraph() playwright.Locator {
	return t.env.Find.ClassFragment("ImagesUnitFlow_paragraph")
}

func (t *PhotoTab) Description() playwright.Locator {
	return t.env.Find.TestID("description")
}

// ImageBlocks lists the image slots in display order
func (t *PhotoTab) ImageBlocks() ([]playwright.Locator, error) {
	return all(t.env.Find.TestID("imageBlock"), "image blocks")
}

// HasImage reports whether block holds an uploaded image
func (t *PhotoTab) HasImage(block playwright.Locator) (bool, error) {
	return hasClass(block, "image block", "ImagesUnitFlow_imageItemGrayed")
}

func (t *PhotoTab) AddImageButton(block playwright.Locator) playwright.Locator {
	return t.env.Find.Within(block).TestID("clickImage")
}

func (t *PhotoTab) DeleteImageButton(block playwright.Locator) playwright.Locator {
	return t.env.Find.Within(block).TestID("deleteImage")
}

func (t *PhotoTab) UnitImage(block playwright.Locator) playwright.Locator {
	return t.env.Find.Within(block).TestID("unitImage")
}

func (t *PhotoTab) DescriptionIsRed() error {
	return t.env.Check.ErrorColored(t.Description(), "photo description")
}

func (t *PhotoTab) ClickPopupClose() error {
	return click(t.PopupCloseIcon(), "photo popup close icon")
}

func (t *PhotoTab) ClickPopupOk() error {
	return click(t.PopupOkButton(), "photo popup ok button")
}

func (t *PhotoTab) ClickAddImage(block playwright.Locator) error {
	return click(t.AddImageButton(block), "add image button")
}

// AddImage uploads the file at path into block through the file chooser
func (t *PhotoTab) AddImage(block playwright.Locator, path string) error {
	chooser, err := t.env.Page.ExpectFileChooser(func() error {
		return t.ClickAddImage(block)
	})
	if err != nil {
		return fmt.Errorf("open file chooser: %w", err)
	}
	if err := chooser.SetFiles(path); err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return nil
}

// DeleteImage hovers block to reveal its delete button and clicks it
func (t *PhotoTab) DeleteImage(block playwright.Locator) error {
	if err := block.Hover(); err != nil {
		return fmt.Errorf("hover image block: %w", err)
	}
	return click(t.DeleteImageButton(block), "delete image button")
}

// MoveImage drags the image in from onto the slot to
func (t *PhotoTab) MoveImage(from, to playwright.Locator) error {
	if err := t.UnitImage(from).DragTo(to); err != nil {
		return fmt.Errorf("drag image: %w", err)
	}
	return nil
}
