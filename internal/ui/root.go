package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/browse"
	"github.com/ytget/recipe-browser/internal/config"
	"github.com/ytget/recipe-browser/internal/mealdb"
	"github.com/ytget/recipe-browser/internal/model"
)

// QueryRunner runs recipe queries in the background and reports their progress
type QueryRunner interface {
	Search(keyword string) (model.Query, error)
	LoadAll() model.Query
	Cancel() error
	Current() (model.Query, bool)
	SetUpdateCallback(callback func(model.Query))
	SetFetcher(fetcher browse.Fetcher)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	svc          QueryRunner
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	searchEntry *widget.Entry
	searchBtn   *widget.Button
	showAllBtn  *widget.Button
	cancelBtn   *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationProgress  *widget.ProgressBar

	// Welcome view, replaced by the results view after the first query
	welcomeTitle  *widget.Label
	welcomeBody   *widget.Label
	welcomeSource *widget.Label
	welcome       *fyne.Container

	results       *container.Split
	titleLabel    *widget.Label
	recipeList    *widget.List
	detailHeading *widget.Label
	detailText    *widget.Label

	session *browse.Session
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc QueryRunner, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		svc:          svc,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Queries report from a background goroutine
	ui.svc.SetUpdateCallback(func(q model.Query) {
		fyne.Do(func() { ui.applyQuery(q) })
	})

	ui.setupUI()
	return ui
}

// NewFetcher builds a TheMealDB client from the saved settings
func NewFetcher(settings *config.Settings, logger *zap.Logger) (*mealdb.Client, error) {
	return mealdb.New(settings.GetBaseURL(),
		mealdb.WithTimeout(settings.GetRequestTimeout()),
		mealdb.WithLogger(logger),
	)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPrompt))
	// Enter in the search field runs the search
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearchClick)
	ui.searchBtn.Importance = widget.WarningImportance

	ui.showAllBtn = widget.NewButton(ui.localization.GetText(KeyShowAll), ui.onShowAllClick)
	ui.showAllBtn.Importance = widget.HighImportance

	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancel), ui.onCancelClick)
	ui.cancelBtn.Disable()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil,
		settingsBtn,
		container.NewHBox(ui.searchBtn, ui.showAllBtn, ui.cancelBtn),
		ui.searchEntry)

	// Notification panel under the search row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationProgress = widget.NewProgressBar()
	ui.notificationProgress.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, nil, nil,
		container.NewVBox(container.NewPadded(ui.notificationLabel), ui.notificationSpinner, ui.notificationProgress))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	ui.welcomeTitle = widget.NewLabelWithStyle(ui.localization.GetText(KeyWelcomeTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.welcomeTitle.SizeName = theme.SizeNameHeadingText
	ui.welcomeBody = widget.NewLabel(ui.localization.GetText(KeyWelcomeBody))
	ui.welcomeBody.Alignment = fyne.TextAlignCenter
	ui.welcomeBody.Wrapping = fyne.TextWrapWord
	ui.welcomeSource = widget.NewLabel(ui.localization.GetText(KeyDataSource))
	ui.welcomeSource.Alignment = fyne.TextAlignCenter
	ui.welcomeSource.Importance = widget.LowImportance
	ui.welcome = container.NewVBox(ui.welcomeTitle, ui.welcomeBody, ui.welcomeSource)

	ui.titleLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeySearchResults), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.recipeList = widget.NewList(
		func() int {
			if ui.session == nil {
				return 0
			}
			return ui.session.Len()
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateRecipeItem(id, obj) },
	)
	ui.recipeList.OnSelected = ui.onRecipeSelected
	listPane := container.NewBorder(ui.titleLabel, nil, nil, nil, ui.recipeList)

	ui.detailHeading = widget.NewLabelWithStyle(ui.localization.GetText(KeyRecipeDetails), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.detailText = widget.NewLabel("")
	ui.detailText.Wrapping = fyne.TextWrapWord
	detailPane := container.NewBorder(ui.detailHeading, nil, nil, nil, container.NewVScroll(ui.detailText))

	ui.results = container.NewHSplit(listPane, detailPane)
	ui.results.Offset = ListPaneOffset
	ui.results.Hide()

	content := container.NewBorder(
		topCombined,
		nil,
		nil,
		nil,
		container.NewStack(container.NewCenter(ui.welcome), ui.results),
	)

	ui.window.SetContent(content)
	ui.logger.Debug("ui setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range sortedLanguageCodes(ui.localization.GetAvailableLanguages()) {
		langCode := code
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPrompt))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.showAllBtn.SetText(ui.localization.GetText(KeyShowAll))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))

	ui.welcomeTitle.SetText(ui.localization.GetText(KeyWelcomeTitle))
	ui.welcomeBody.SetText(ui.localization.GetText(KeyWelcomeBody))
	ui.welcomeSource.SetText(ui.localization.GetText(KeyDataSource))
	ui.detailHeading.SetText(ui.localization.GetText(KeyRecipeDetails))

	if ui.session != nil {
		ui.titleLabel.SetText(resultTitle(ui.localization, ui.session.Query()))
		ui.showSelectedDetail()
	} else {
		ui.titleLabel.SetText(ui.localization.GetText(KeySearchResults))
	}
}

// onSearchClick starts a keyword search
func (ui *RootUI) onSearchClick() {
	_, err := ui.svc.Search(ui.searchEntry.Text)
	if errors.Is(err, browse.ErrEmptyKeyword) {
		ui.showWelcome()
		ui.showMessage(ui.localization.GetText(KeySearchHint), ui.localization.GetText(KeyEnterKeyword), false)
		return
	}
	if err != nil {
		ui.logger.Error("search failed to start", zap.Error(err))
	}
}

// onShowAllClick starts the alphabet sweep
func (ui *RootUI) onShowAllClick() {
	ui.svc.LoadAll()
}

// onCancelClick stops the running query
func (ui *RootUI) onCancelClick() {
	if err := ui.svc.Cancel(); errors.Is(err, browse.ErrNoQuery) {
		ui.showNotification(ui.localization.GetText(KeyNoActiveQuery), false)
	}
}

// applyQuery renders a query update; must run on the UI goroutine
func (ui *RootUI) applyQuery(q model.Query) {
	// Updates for a superseded query are stale
	if current, ok := ui.svc.Current(); ok && current.ID != q.ID {
		return
	}

	switch q.Status {
	case model.QueryStatusPending, model.QueryStatusRunning:
		ui.cancelBtn.Enable()
		ui.showProgress(q)
	case model.QueryStatusCompleted:
		ui.cancelBtn.Disable()
		ui.hideNotification()
		ui.showResults(q)
		title, message := completionMessage(ui.localization, q)
		ui.showMessage(title, message, false)
	case model.QueryStatusCancelled:
		ui.cancelBtn.Disable()
		ui.showNotification(ui.localization.GetText(KeyQueryCancelled), false)
	case model.QueryStatusError:
		ui.cancelBtn.Disable()
		ui.hideNotification()
		ui.showResults(q)
		title, message := failureMessage(ui.localization, q)
		ui.showMessage(title, message, true)
	}
}

// showProgress shows the spinner, or a progress bar once sweep letters complete
func (ui *RootUI) showProgress(q model.Query) {
	ui.notificationLabel.SetText(progressText(ui.localization, q))
	if q.Kind == model.QueryKindAll && q.LettersDone > 0 {
		ui.notificationSpinner.Hide()
		ui.notificationProgress.SetValue(q.Progress)
		ui.notificationProgress.Show()
	} else {
		ui.notificationProgress.Hide()
		ui.notificationSpinner.Show()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// showNotification displays a message in the notification panel under the search row.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationLabel.SetText(message)
	ui.notificationProgress.Hide()
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationProgress.Hide()
	ui.notificationContainer.Hide()
}

// showMessage opens a modal message dialog
func (ui *RootUI) showMessage(title, message string, isError bool) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	var icon fyne.CanvasObject
	if isError {
		icon = widget.NewIcon(theme.ErrorIcon())
	} else {
		icon = widget.NewIcon(theme.InfoIcon())
	}

	d := dialog.NewCustom(title, ui.localization.GetText(KeyOK), container.NewBorder(nil, nil, icon, nil, label), ui.window)
	d.Resize(fyne.NewSize(MessageDialogWidth, 0))
	d.Show()
}

// showWelcome switches the content area back to the welcome message
func (ui *RootUI) showWelcome() {
	ui.session = nil
	ui.results.Hide()
	ui.welcome.Show()
}

// showResults replaces the list with the records of q, sorted per settings
func (ui *RootUI) showResults(q model.Query) {
	ui.session = browse.NewSession(q, ui.settings.GetSortOrder(), browse.LanguageTag(ui.localization.GetCurrentLanguage()))

	ui.titleLabel.SetText(resultTitle(ui.localization, q))
	ui.recipeList.UnselectAll()
	ui.recipeList.ScrollToTop()
	ui.recipeList.Refresh()
	ui.detailText.SetText("")

	ui.welcome.Hide()
	ui.results.Show()
}

// updateRecipeItem renders one list row
func (ui *RootUI) updateRecipeItem(id widget.ListItemID, item fyne.CanvasObject) {
	if ui.session == nil {
		return
	}
	recipe, ok := ui.session.At(id)
	if !ok {
		return
	}
	if label, ok := item.(*widget.Label); ok {
		label.SetText(recipe.Name)
	}
}

// onRecipeSelected shows the details of the selected recipe
func (ui *RootUI) onRecipeSelected(id widget.ListItemID) {
	if ui.session == nil {
		return
	}
	if _, ok := ui.session.Select(id); !ok {
		ui.detailText.SetText("")
		return
	}
	ui.showSelectedDetail()
}

// showSelectedDetail renders the selected recipe into the detail pane
func (ui *RootUI) showSelectedDetail() {
	recipe, ok := ui.session.Selected()
	if !ok {
		ui.detailText.SetText("")
		return
	}
	ui.detailText.SetText(FormatDetail(recipe, ui.localization))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings rebuilds the fetcher and refreshes the view after settings change
func (ui *RootUI) applySettings() {
	fetcher, err := NewFetcher(ui.settings, ui.logger)
	if err != nil {
		ui.logger.Warn("invalid settings", zap.Error(err))
		ui.showMessage(ui.localization.GetText(KeyInvalidSettings), err.Error(), true)
		return
	}
	ui.svc.SetFetcher(fetcher)
	ui.logger.Info("settings applied",
		zap.String("base_url", fetcher.BaseURL()),
		zap.Duration("timeout", fetcher.Timeout()))

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	// Re-sort the visible records for the new order or language
	if ui.session != nil {
		ui.showResults(ui.session.Query())
	}
	ui.showNotification(ui.localization.GetText(KeySettingsSaved), false)
}

// validateBaseURL validates the entered API base URL
func validateBaseURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty restores the default
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL must include a host")
	}

	return nil
}
