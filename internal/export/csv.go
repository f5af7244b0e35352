package export

import (
	"bufio"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/bayesimpact/sf-homelessness/pkg/constants"
	"github.com/bayesimpact/sf-homelessness/pkg/errors"
	"github.com/bayesimpact/sf-homelessness/pkg/linkage"
	"github.com/bayesimpact/sf-homelessness/pkg/records"
)

// WriteCSV writes both labeled tables into the output directory, creating
// it if needed.
func WriteCSV(dir string, result *linkage.Result) error {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("mkdir", dir, err)
	}
	if err := WriteHMISCSV(filepath.Join(dir, constants.HMISOutputFile), result.HMIS); err != nil {
		return err
	}
	return WriteCPCSV(filepath.Join(dir, constants.CPOutputFile), result.CP)
}

// WriteHMISCSV writes the labeled HMIS table to a CSV file.
func WriteHMISCSV(path string, t records.HMISTable) error {
	return writeCSV(path, hmisColumns, len(t), func(i int) []string {
		return hmisRow(t[i])
	})
}

// WriteCPCSV writes the labeled Connecting Point table to a CSV file.
func WriteCPCSV(path string, t records.CPTable) error {
	return writeCSV(path, cpColumns, len(t), func(i int) []string {
		return cpRow(t[i])
	})
}

func writeCSV(path string, header []string, n int, row func(int) []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	buf := bufio.NewWriterSize(f, constants.WriteBufferSize)
	w := csv.NewWriter(buf)

	if err := w.Write(header); err != nil {
		return errors.WrapIO("write", path, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := buf.Flush(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}

func hmisRow(r records.HMISRecord) []string {
	return []string{
		formatID(r.RawSubjectID),
		formatID(r.SubjectID),
		formatID(r.FamilyID),
		formatID(r.FamilySiteID),
		r.RawProgramStart,
		formatDate(r.ProgramStart),
		r.RawProgramEnd,
		formatDate(r.ProgramEnd),
		r.RawDOB,
		formatDate(r.DOB),
		formatInt(r.AgeEntered),
		formatBool(r.Child),
		formatBool(r.Adult),
		formatBool(r.WithChild),
		formatBool(r.WithAdult),
		formatBool(r.WithFamily),
		formatBool(r.Family),
	}
}

func cpRow(r records.CPRecord) []string {
	return []string{
		formatID(r.RawClientID),
		formatID(r.ClientID),
		formatID(r.FamilyID),
		formatID(r.CaseID),
		r.RawServStart,
		formatDate(r.ServStart),
		r.RawServEnd,
		formatDate(r.ServEnd),
		r.RawLastUpdate,
		formatDate(r.LastUpdate),
		formatInt(r.Age),
		formatBool(r.Child),
		formatBool(r.Adult),
		formatBool(r.WithChild),
		formatBool(r.WithAdult),
		formatBool(r.WithFamily),
		formatBool(r.Family),
	}
}
