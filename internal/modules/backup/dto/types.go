package dto

type ExportOutput struct {
	Data          []byte
	ExportDate    string
	SettingsCount int
	ActivityCount int
}

type ImportOutput struct {
	ExportDate    string
	SettingsCount int
	ActivityCount int
}
