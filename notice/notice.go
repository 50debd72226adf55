// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

// Package notice renders the messages shown to the user when a pair of dates
// cannot be plotted, in the language the user asked for.
package notice

import (
	"github.com/jcodagnone/datemap/datecoords"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	MalformedInput = "Enter two dates as DD.MM.YYYY, DD.MM.YYYY (the year may have 2-4 digits)."
	NoCoordinates  = "Could not derive coordinates from the dates."
	NoValidPairs   = "No suitable coordinates found."
	Unexpected     = "Unexpected error: %v"
	PointsFound    = "%d points found."
	InvalidReverse = "The reverse parameter must be true or false."
	MissingDate    = "The date parameter is required."
)

// Supported lists the languages notices are translated to. The first one is
// the fallback.
var Supported = []language.Tag{
	language.English,
	language.Spanish,
	language.Russian,
}

var (
	matcher = language.NewMatcher(Supported)
	cat     = newCatalog()
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	for _, entry := range []struct {
		tag  language.Tag
		key  string
		text string
	}{
		{language.English, MalformedInput, MalformedInput},
		{language.English, NoCoordinates, NoCoordinates},
		{language.English, NoValidPairs, NoValidPairs},
		{language.English, Unexpected, Unexpected},
		{language.English, PointsFound, PointsFound},
		{language.English, InvalidReverse, InvalidReverse},
		{language.English, MissingDate, MissingDate},

		{language.Spanish, MalformedInput, "Ingrese dos fechas con formato DD.MM.AAAA, DD.MM.AAAA (el año puede tener 2-4 dígitos)."},
		{language.Spanish, NoCoordinates, "No se pudieron obtener coordenadas de las fechas."},
		{language.Spanish, NoValidPairs, "No se encontraron coordenadas adecuadas."},
		{language.Spanish, Unexpected, "Error inesperado: %v"},
		{language.Spanish, PointsFound, "%d puntos encontrados."},
		{language.Spanish, InvalidReverse, "El parámetro reverse debe ser true o false."},
		{language.Spanish, MissingDate, "El parámetro date es obligatorio."},

		{language.Russian, MalformedInput, "Введите две даты в формате: DD.MM.YYYY, DD.MM.YYYY (год может быть 2-4 цифры)"},
		{language.Russian, NoCoordinates, "Не удалось получить координаты из дат."},
		{language.Russian, NoValidPairs, "Подходящих координат не найдено."},
		{language.Russian, Unexpected, "Непредвиденная ошибка: %v"},
		{language.Russian, PointsFound, "Найдено точек: %d."},
		{language.Russian, InvalidReverse, "Параметр reverse должен быть true или false."},
		{language.Russian, MissingDate, "Параметр date обязателен."},
	} {
		if err := b.SetString(entry.tag, entry.key, entry.text); err != nil {
			panic(err)
		}
	}

	return b
}

// Printer formats notices in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a Printer for the supported language closest to the
// given BCP 47 tags or Accept-Language values. Unknown or empty preferences
// fall back to English.
func NewPrinter(prefs ...string) *Printer {
	var tags []language.Tag

	for _, pref := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}

		tags = append(tags, parsed...)
	}

	_, idx, _ := matcher.Match(tags...)
	tag := Supported[idx]

	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Language returns the language notices are printed in.
func (p *Printer) Language() language.Tag {
	return p.tag
}

// Sprintf formats the message registered under key.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Error returns the notice to show for err.
func (p *Printer) Error(err error) string {
	switch datecoords.TypeOf(err) {
	case datecoords.ErrorTypeMalformedInput:
		return p.Sprintf(MalformedInput)
	case datecoords.ErrorTypeNoCoordinates:
		return p.Sprintf(NoCoordinates)
	case datecoords.ErrorTypeNoValidPairs:
		return p.Sprintf(NoValidPairs)
	default:
		return p.Sprintf(Unexpected, err)
	}
}
