package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "tasktrack/internal/errors"
)

// expectedHeaders is the fixed column contract for task import files, in order.
var expectedHeaders = []string{"S.no", "Task", "Description", "Name", "Department"}

// ParsedTask is one validated data row from an import file. The "Name" column
// (the person named in the spreadsheet) is carried by the file but not imported.
type ParsedTask struct {
	SNo            int
	TaskName       string
	Description    string
	DepartmentName string
}

// CSVParser validates uploaded task files against the fixed column contract.
//
// The whole file is accepted or rejected: a non-empty violation list fails the
// call with every violation collected across the file, so a corrected re-upload
// replaces a confusing half-import.
type CSVParser struct{}

// NewCSVParser creates a CSV parser.
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse turns uploaded bytes into the ordered batch of task rows, or fails
// with an aggregate validation error enumerating every violation.
func (p *CSVParser) Parse(data []byte) ([]ParsedTask, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var violations []string

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.ErrEmptyCSV
	}
	if err != nil {
		return nil, apperrors.NewValidationError("CSV validation failed",
			[]string{fmt.Sprintf("error parsing CSV: %v", err)})
	}

	// Strip BOM some spreadsheet exports prepend to the first cell.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	if v := validateHeader(header); v != "" {
		violations = append(violations, v)
	}

	var tasks []ParsedTask
	rowNumber := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNumber++
		if err != nil {
			violations = append(violations, fmt.Sprintf("Row %d: error parsing CSV: %v", rowNumber, err))
			continue
		}

		task, rowViolations := parseRow(record, rowNumber)
		if len(rowViolations) > 0 {
			violations = append(violations, rowViolations...)
			continue
		}
		tasks = append(tasks, task)
	}

	if len(violations) > 0 {
		return nil, apperrors.NewValidationError("CSV validation failed", violations)
	}
	if len(tasks) == 0 {
		return nil, apperrors.ErrEmptyCSV
	}
	return tasks, nil
}

// validateHeader checks the first record against the column contract in exact
// order and count. It returns a single violation describing the mismatch, or "".
func validateHeader(header []string) string {
	match := len(header) == len(expectedHeaders)
	if match {
		for i, want := range expectedHeaders {
			if strings.TrimSpace(header[i]) != want {
				match = false
				break
			}
		}
	}
	if match {
		return ""
	}
	return fmt.Sprintf("Invalid header format. Expected: %q but got: %q",
		strings.Join(expectedHeaders, ","), strings.Join(header, ","))
}

// parseRow validates one data row. A failing row reports one violation per
// failing field and never produces a partial ParsedTask.
func parseRow(record []string, rowNumber int) (ParsedTask, []string) {
	var violations []string

	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	sNoRaw := field(0)
	sNo, err := strconv.Atoi(sNoRaw)
	if sNoRaw == "" || err != nil {
		violations = append(violations, fmt.Sprintf("Row %d: S.no must be a valid number", rowNumber))
	}

	taskName := field(1)
	if taskName == "" {
		violations = append(violations, fmt.Sprintf("Row %d: Task field is empty", rowNumber))
	}

	description := field(2)
	if description == "" {
		violations = append(violations, fmt.Sprintf("Row %d: Description field is empty", rowNumber))
	}

	departmentName := field(4)
	if departmentName == "" {
		violations = append(violations, fmt.Sprintf("Row %d: Department field is empty", rowNumber))
	}

	if len(violations) > 0 {
		return ParsedTask{}, violations
	}

	return ParsedTask{
		SNo:            sNo,
		TaskName:       taskName,
		Description:    description,
		DepartmentName: departmentName,
	}, nil
}
