// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package notice

import (
	"errors"
	"testing"

	"github.com/jcodagnone/datemap/datecoords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewPrinterLanguage(t *testing.T) {
	tests := []struct {
		prefs    []string
		expected language.Tag
	}{
		{nil, language.English},
		{[]string{""}, language.English},
		{[]string{"de"}, language.English},
		{[]string{"ru"}, language.Russian},
		{[]string{"ru-RU,ru;q=0.9,en;q=0.8"}, language.Russian},
		{[]string{"es-UY"}, language.Spanish},
		{[]string{"not a tag!!", "es"}, language.Spanish},
	}

	for _, test := range tests {
		t.Run(test.expected.String(), func(t *testing.T) {
			assert.Equal(t, test.expected, NewPrinter(test.prefs...).Language())
		})
	}
}

func TestError(t *testing.T) {
	_, malformed := datecoords.Run("14.10.1966", datecoords.Options{})
	require.Error(t, malformed)

	_, noCoords := datecoords.Run("x.y.z, 1.1.1", datecoords.Options{})
	require.Error(t, noCoords)

	ru := NewPrinter("ru")
	assert.Equal(t, "Введите две даты в формате: DD.MM.YYYY, DD.MM.YYYY (год может быть 2-4 цифры)", ru.Error(malformed))
	assert.Equal(t, "Не удалось получить координаты из дат.", ru.Error(noCoords))
	assert.Equal(t, "Подходящих координат не найдено.", ru.Error(datecoords.ErrNoValidPairs))

	en := NewPrinter("en")
	assert.Equal(t, MalformedInput, en.Error(malformed))
	assert.Equal(t, NoCoordinates, en.Error(noCoords))
	assert.Equal(t, "Unexpected error: boom", en.Error(errors.New("boom")))

	es := NewPrinter("es")
	assert.Equal(t, "No se encontraron coordenadas adecuadas.", es.Error(datecoords.ErrNoValidPairs))
	assert.Equal(t, "16 puntos encontrados.", es.Sprintf(PointsFound, 16))
	assert.Equal(t, "El parámetro reverse debe ser true o false.", es.Sprintf(InvalidReverse))
	assert.Equal(t, "Параметр reverse должен быть true или false.", ru.Sprintf(InvalidReverse))
}
