package model

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Language string

const (
	LanguageAZ Language = "az"
	LanguageEN Language = "en"
)
