package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Emp ID", "EMPID"},
		{"  EMP   ID  ", "EMPID"},
		{"emp\tname", "EMPNAME"},
		{"Grade", "GRADE"},
		{"TOTAL", "TOTAL"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeHeader(tt.in), "normalizeHeader(%q)", tt.in)
	}
}

func TestTableCell(t *testing.T) {
	table := NewTable(
		[]string{"A", "B", "C"},
		[][]string{
			{"1", "2", "3"},
			{"4"}, // short row
		},
	)

	assert.Equal(t, "2", table.Cell(0, 1))
	assert.Equal(t, "4", table.Cell(1, 0))
	assert.Equal(t, "", table.Cell(1, 2), "cells beyond a short row read as blank")
	assert.Equal(t, "", table.Cell(5, 0), "out-of-range rows read as blank")
}

func TestTableColumn(t *testing.T) {
	table := NewTable(
		[]string{"A", "B"},
		[][]string{
			{"1", "x"},
			{"2"},
			{"3", "z"},
		},
	)
	assert.Equal(t, []string{"x", "", "z"}, table.Column(1))
}

func TestTableEmpty(t *testing.T) {
	assert.True(t, NewTable(nil, nil).Empty())
	assert.True(t, NewTable([]string{"A"}, nil).Empty())
	assert.False(t, NewTable([]string{"A"}, [][]string{{"1"}}).Empty())
}
