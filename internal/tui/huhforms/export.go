package huhforms

import (
	"errors"

	"charm.land/huh/v2"
)

// ErrEmptyExportPath is returned by the export form when no file is given
var ErrEmptyExportPath = errors.New("export file is required")

// CreateExportForm asks where to write the CSV export. path arrives
// prefilled with a suggested file name.
func CreateExportForm(path *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("export_path").
			Title("Export to").
			Description("CSV file to write; ~ expands to your home directory").
			Validate(required(ErrEmptyExportPath)).
			Value(path),
	)).WithShowHelp(false)
}
