package model

import "fmt"

// FastType is a named fasting preset selectable when starting a fast.
type FastType struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Hours    float64 `json:"hours"`
	IsCustom bool    `json:"isCustom"`
}

var CommonFastTypes = []FastType{
	{ID: "16-8", Name: "16:8 Int.", Hours: 16},
	{ID: "18-6", Name: "18:6 Int.", Hours: 18},
	{ID: "20-4", Name: "20:4 Int.", Hours: 20},
	{ID: "24h", Name: "1 Day", Hours: 24},
	{ID: "36h", Name: "1.5 Days", Hours: 36},
	{ID: "48h", Name: "2 Days", Hours: 48},
	{ID: "72h", Name: "3 Days", Hours: 72},
	{ID: "96h", Name: "4 Days", Hours: 96},
	{ID: "120h", Name: "5 Days", Hours: 120},
	{ID: "168h", Name: "7 Days", Hours: 168},
}

func FastTypeByID(id string) (FastType, bool) {
	for _, ft := range CommonFastTypes {
		if ft.ID == id {
			return ft, true
		}
	}
	return FastType{}, false
}

func CustomFastType(hours float64) FastType {
	return FastType{
		ID:       fmt.Sprintf("custom-%gh", hours),
		Name:     "Custom",
		Hours:    hours,
		IsCustom: true,
	}
}
