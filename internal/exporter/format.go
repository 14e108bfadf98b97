package exporter

// Character caps for grid document cells
const (
	headerMaxRunes = 30
	cellMaxRunes   = 38
	cellKeepRunes  = 35
	ellipsis       = "..."
)

// truncateHeader cuts a column name to headerMaxRunes
func truncateHeader(s string) string {
	r := []rune(s)
	if len(r) <= headerMaxRunes {
		return s
	}
	return string(r[:headerMaxRunes])
}

// truncateCell shortens values longer than cellMaxRunes to cellKeepRunes
// followed by an ellipsis
func truncateCell(s string) string {
	r := []rune(s)
	if len(r) <= cellMaxRunes {
		return s
	}
	return string(r[:cellKeepRunes]) + ellipsis
}
