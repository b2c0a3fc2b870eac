package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// DateLayout is how days are written on the command line
	DateLayout = "02/01/2006"

	fileDateLayout = "02012006"
	filePrefix     = "appointments_"
	fileExt        = ".txt"
)

// DataDir is the directory holding one appointments file per day
type DataDir string

// PathFor is the file of the calendar day of day, e.g.
// <dir>/appointments_19102026.txt
func (d DataDir) PathFor(day time.Time) string {
	return filepath.Join(string(d), filePrefix+day.Format(fileDateLayout)+fileExt)
}

// Days lists the days that have a file, oldest first. A missing directory
// has no days.
func (d DataDir) Days() ([]time.Time, error) {
	entries, err := os.ReadDir(string(d))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	days := make([]time.Time, 0, len(entries))
	for _, x := range entries {
		if x.IsDir() {
			continue
		}

		day, ok := dayFromFileName(x.Name())
		if !ok {
			continue
		}

		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	return days, nil
}

func dayFromFileName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, filePrefix) || filepath.Ext(name) != fileExt {
		return time.Time{}, false
	}

	code := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt)
	day, err := time.ParseInLocation(fileDateLayout, code, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// ParseDate reads a dd/mm/yyyy day in local time
func ParseDate(s string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected dd/mm/yyyy", s)
	}
	return day, nil
}

func FormatDate(day time.Time) string {
	return day.Format(DateLayout)
}
