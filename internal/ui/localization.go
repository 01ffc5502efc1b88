package ui

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	systemLocale    func() string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearchPrompt      = "search_prompt"
	KeySearch            = "search"
	KeyShowAll           = "show_all"
	KeyCancel            = "cancel"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyWelcomeTitle      = "welcome_title"
	KeyWelcomeBody       = "welcome_body"
	KeyDataSource        = "data_source"
	KeySearching         = "searching"
	KeyFetchingAll       = "fetching_all"
	KeyFetchingLetter    = "fetching_letter"
	KeySearchResults     = "search_results"
	KeySearchResultsFor  = "search_results_for"
	KeyAllRecipes        = "all_recipes"
	KeyRecipeDetails     = "recipe_details"
	KeyRecipeName        = "recipe_name"
	KeyCategory          = "category"
	KeyIngredients       = "ingredients"
	KeyNoIngredients     = "no_ingredients"
	KeyInstructions      = "instructions"
	KeySearchHint        = "search_hint"
	KeyEnterKeyword      = "enter_keyword"
	KeySearchComplete    = "search_complete"
	KeyFoundMatches      = "found_matches"
	KeySearchResult      = "search_result"
	KeyNoMatches         = "no_matches"
	KeyLoadComplete      = "load_complete"
	KeyLoadedAll         = "loaded_all"
	KeyLoadFailed        = "load_failed"
	KeyNoRecipesFetched  = "no_recipes_fetched"
	KeyTimeoutTitle      = "timeout_title"
	KeyTimeoutMessage    = "timeout_message"
	KeyConnectionTitle   = "connection_title"
	KeyConnectionMessage = "connection_message"
	KeyRequestTitle      = "request_title"
	KeyRequestMessage    = "request_message"
	KeyUnknownTitle      = "unknown_title"
	KeyUnknownMessage    = "unknown_message"
	KeyQueryCancelled    = "query_cancelled"
	KeyNoActiveQuery     = "no_active_query"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidSettings   = "invalid_settings"
	KeyBaseURL           = "base_url"
	KeyRequestTimeout    = "request_timeout"
	KeySortOrder         = "sort_order"
	KeySortCodepoint     = "sort_codepoint"
	KeySortLocale        = "sort_locale"
	KeyOK                = "ok"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		systemLocale:    func() string { return string(lang.SystemLocale()) },
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = l.detectSystemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// detectSystemLanguage maps the OS locale onto a supported language
func (l *Localization) detectSystemLanguage() string {
	if l.systemLocale != nil {
		locale := strings.ToLower(l.systemLocale())
		if strings.HasPrefix(locale, "zh") {
			return "zh"
		}
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"zh": "中文",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Online Recipe Collection",
		KeySearchPrompt:      "Enter a recipe name or keyword",
		KeySearch:            "Search Recipes",
		KeyShowAll:           "Show All Recipes",
		KeyCancel:            "Cancel",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyWelcomeTitle:      "Welcome to the Online Recipe Collection!",
		KeyWelcomeBody:       "Type a keyword in the search box above,\nor click \"Show All Recipes\" to browse the TheMealDB catalogue.",
		KeyDataSource:        "Data provided by the TheMealDB public API.",
		KeySearching:         "Searching recipes...",
		KeyFetchingAll:       "Fetching all recipes, this may take a while...",
		KeyFetchingLetter:    "Fetching recipes starting with %q (%d/%d)...",
		KeySearchResults:     "Online results",
		KeySearchResultsFor:  "Online results for '%s'",
		KeyAllRecipes:        "All online recipes (%d)",
		KeyRecipeDetails:     "Recipe Details",
		KeyRecipeName:        "Recipe",
		KeyCategory:          "Category",
		KeyIngredients:       "Ingredients",
		KeyNoIngredients:     "No ingredient information available.",
		KeyInstructions:      "Instructions",
		KeySearchHint:        "Search hint",
		KeyEnterKeyword:      "Please enter a search keyword.",
		KeySearchComplete:    "Search complete",
		KeyFoundMatches:      "Found %d matching recipes online.",
		KeySearchResult:      "Search result",
		KeyNoMatches:         "No online recipes match '%s'.",
		KeyLoadComplete:      "Loading complete",
		KeyLoadedAll:         "Fetched and displayed %d recipes from the online database.",
		KeyLoadFailed:        "Loading failed",
		KeyNoRecipesFetched:  "Could not fetch any recipes from the online database. Please check your network connection.",
		KeyTimeoutTitle:      "Network timeout",
		KeyTimeoutMessage:    "Connecting to the recipe database timed out. Please check your network connection and try again.",
		KeyConnectionTitle:   "Network error",
		KeyConnectionMessage: "Could not connect to the recipe database. Please check your network connection.",
		KeyRequestTitle:      "API request error",
		KeyRequestMessage:    "Error fetching recipes from the online database: %s",
		KeyUnknownTitle:      "Unknown error",
		KeyUnknownMessage:    "An unknown error occurred while processing online recipe data: %s",
		KeyQueryCancelled:    "Query cancelled",
		KeyNoActiveQuery:     "No query is running",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidSettings:   "Invalid settings",
		KeyBaseURL:           "API Base URL",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeySortOrder:         "Sort Order",
		KeySortCodepoint:     "Code point",
		KeySortLocale:        "Alphabetical (locale)",
		KeyOK:                "OK",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:          "在线食谱大全",
		KeySearchPrompt:      "输入食谱名称或关键词",
		KeySearch:            "搜索食谱",
		KeyShowAll:           "显示所有食谱",
		KeyCancel:            "取消",
		KeySettings:          "设置",
		KeyFile:              "文件",
		KeyLanguage:          "语言",
		KeySave:              "保存",
		KeyWelcomeTitle:      "欢迎使用在线食谱大全！",
		KeyWelcomeBody:       "在上方搜索框输入关键词进行搜索，\n或者点击“显示所有食谱”查看来自 TheMealDB 的大量食谱。",
		KeyDataSource:        "数据来自 TheMealDB 公开 API。",
		KeySearching:         "正在搜索食谱...",
		KeyFetchingAll:       "正在获取所有食谱，这可能需要一些时间...",
		KeyFetchingLetter:    "正在获取以 %q 开头的食谱 (%d/%d)...",
		KeySearchResults:     "在线搜索结果",
		KeySearchResultsFor:  "在线搜索结果 '%s'",
		KeyAllRecipes:        "所有在线食谱 (%d 个)",
		KeyRecipeDetails:     "食谱详情",
		KeyRecipeName:        "食谱名称",
		KeyCategory:          "分类",
		KeyIngredients:       "食材",
		KeyNoIngredients:     "无可用食材信息。",
		KeyInstructions:      "烹饪步骤",
		KeySearchHint:        "搜索提示",
		KeyEnterKeyword:      "请输入搜索关键词。",
		KeySearchComplete:    "搜索完成",
		KeyFoundMatches:      "在线找到 %d 个匹配食谱。",
		KeySearchResult:      "搜索结果",
		KeyNoMatches:         "未找到与 '%s' 匹配的在线食谱。",
		KeyLoadComplete:      "加载完成",
		KeyLoadedAll:         "已从在线数据库获取并显示 %d 个食谱。",
		KeyLoadFailed:        "加载失败",
		KeyNoRecipesFetched:  "未能从在线数据库获取任何食谱，请检查网络连接。",
		KeyTimeoutTitle:      "网络超时",
		KeyTimeoutMessage:    "连接到食谱数据库超时。请检查您的网络连接并重试。",
		KeyConnectionTitle:   "网络错误",
		KeyConnectionMessage: "无法连接到食谱数据库。请检查您的网络连接。",
		KeyRequestTitle:      "API请求错误",
		KeyRequestMessage:    "从在线数据库获取食谱时出错: %s",
		KeyUnknownTitle:      "未知错误",
		KeyUnknownMessage:    "处理在线食谱数据时发生未知错误: %s",
		KeyQueryCancelled:    "查询已取消",
		KeyNoActiveQuery:     "当前没有进行中的查询",
		KeySettingsSaved:     "设置已保存！",
		KeyInvalidSettings:   "设置无效",
		KeyBaseURL:           "API 地址",
		KeyRequestTimeout:    "请求超时（秒）",
		KeySortOrder:         "排序方式",
		KeySortCodepoint:     "按码位",
		KeySortLocale:        "按字母（本地化）",
		KeyOK:                "确定",
	}
}

// sortedLanguageCodes returns the language codes in a stable menu order
func sortedLanguageCodes(languages map[string]string) []string {
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
