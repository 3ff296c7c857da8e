package loading

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// File reads (time, stress) rows from a comma or whitespace separated file
// and resamples them onto the window. Lines starting with '#' are comments;
// a non-numeric first row is treated as a header.
type File struct {
	Window
	Path string
	// Rate overrides the background rate estimated from the file when non-zero.
	Rate float64

	once    sync.Once
	loadErr error
	sampleT []float64
	sampleS []float64
}

func (f *File) load() error {
	f.once.Do(func() {
		fh, err := os.Open(f.Path)
		if err != nil {
			f.loadErr = fmt.Errorf("%w: %v", ErrBadFile, err)
			return
		}
		defer fh.Close()

		ts, ss, err := ReadSeries(fh)
		if err != nil {
			f.loadErr = fmt.Errorf("%w: %s: %v", ErrBadFile, f.Path, err)
			return
		}
		f.sampleT, f.sampleS = ts, ss
	})
	return f.loadErr
}

// ReadSeries parses two-column rows separated by commas or whitespace,
// sorted by time on return.
func ReadSeries(r io.Reader) ([]float64, []float64, error) {
	type row struct{ t, s float64 }
	var rows []row

	sc := bufio.NewScanner(r)
	line, data := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		data++
		rec := strings.FieldsFunc(text, isSeparator)
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("line %d: expected 2 columns, got %d", line, len(rec))
		}
		t, errT := strconv.ParseFloat(rec[0], 64)
		s, errS := strconv.ParseFloat(rec[1], 64)
		if errT != nil || errS != nil {
			if data == 1 {
				continue
			}
			return nil, nil, fmt.Errorf("line %d: non-numeric value", line)
		}
		rows = append(rows, row{t, s})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no samples")
	}

	sort.SliceStable(rows, func(a, b int) bool { return rows[a].t < rows[b].t })
	ts := make([]float64, len(rows))
	ss := make([]float64, len(rows))
	for i, r := range rows {
		ts[i], ss[i] = r.t, r.s
	}
	return ts, ss, nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func (f *File) Values(length int) ([]float64, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	if err := f.load(); err != nil {
		return nil, err
	}
	cf := make([]float64, length)
	for i, t := range f.times(length) {
		cf[i] = interp(f.sampleT, f.sampleS, t)
	}
	return cf, nil
}

func (f *File) StressRate() float64 {
	if f.Rate != 0 {
		return f.Rate
	}
	if err := f.load(); err != nil {
		return 0
	}
	n := len(f.sampleT)
	if n < 2 || f.sampleT[n-1] == f.sampleT[0] {
		return 0
	}
	return (f.sampleS[n-1] - f.sampleS[0]) / (f.sampleT[n-1] - f.sampleT[0])
}
