package domain

// Export formats accepted by StreamArticles.
const (
	FormatNDJSON = "ndjson"
	FormatCSV    = "csv"
)

// NormalizeFormat returns format when it is a known export format and FormatNDJSON otherwise.
func NormalizeFormat(format string) string {
	switch format {
	case FormatCSV, FormatNDJSON:
		return format
	default:
		return FormatNDJSON
	}
}

// ContentType is the response media type for an export format.
func ContentType(format string) string {
	if NormalizeFormat(format) == FormatCSV {
		return "text/csv"
	}
	return "application/x-ndjson"
}
