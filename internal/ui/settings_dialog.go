package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-browser/internal/config"
	"github.com/ytget/recipe-browser/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry   *widget.Entry
	timeoutEntry   *widget.Entry
	sortSelect     *widget.Select
	languageSelect *widget.Select

	// Display label to stored value
	sortValues     map[string]model.SortOrder
	languageValues map[string]string
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a successful save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, loc, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: loc,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultBaseURL)
	sd.baseURLEntry.Validator = validateBaseURL

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinTimeoutSeconds) + "-" + strconv.Itoa(config.MaxTimeoutSeconds))

	sd.sortValues = map[string]model.SortOrder{
		sd.localization.GetText(KeySortCodepoint): model.SortCodepoint,
		sd.localization.GetText(KeySortLocale):    model.SortLocale,
	}
	sortOptions := []string{}
	for _, order := range sd.settings.GetSortOrderOptions() {
		sortOptions = append(sortOptions, sd.sortLabel(order))
	}
	sd.sortSelect = widget.NewSelect(sortOptions, nil)

	sd.languageValues = map[string]string{}
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for _, code := range sortedLanguageCodes(languageLabels) {
		sd.languageValues[languageLabels[code]] = code
		languageOptions = append(languageOptions, languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(sd.localization.GetText(KeySortOrder)+":"),
		sd.sortSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogH))
}

// sortLabel returns the display label of order
func (sd *SettingsDialog) sortLabel(order model.SortOrder) string {
	if order == model.SortLocale {
		return sd.localization.GetText(KeySortLocale)
	}
	return sd.localization.GetText(KeySortCodepoint)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))
	sd.sortSelect.SetSelected(sd.sortLabel(sd.settings.GetSortOrder()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// An invalid URL keeps the previous value
	if validateBaseURL(sd.baseURLEntry.Text) == nil {
		sd.settings.SetBaseURL(sd.baseURLEntry.Text)
	}

	if timeoutStr := sd.timeoutEntry.Text; timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil {
			sd.settings.SetRequestTimeoutSeconds(timeout)
		}
	}

	if order, ok := sd.sortValues[sd.sortSelect.Selected]; ok {
		sd.settings.SetSortOrder(order)
	}

	if code, ok := sd.languageValues[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
