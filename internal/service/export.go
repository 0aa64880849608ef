package service

import (
	"fmt"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/xuri/excelize/v2"
)

// BuildRosterWorkbook renders a team roster as a spreadsheet named
// "<hostel>_<sport>_team.xlsx".
func BuildRosterWorkbook(hostelName string, sport event.Sport, players []event.Player) (*excelize.File, string, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []interface{}{"#", "Name", "Position", "Jersey Number", "Mobile Number", "T-shirt Size"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", err
	}

	for i, p := range players {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		row := []interface{}{i + 1, p.Name, p.Position, p.JerseyNumber, p.MobileNumber, string(p.TshirtSize)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", err
		}
	}

	filename := fmt.Sprintf("%s_%s_team.xlsx", hostelName, sport)
	return f, filename, nil
}
