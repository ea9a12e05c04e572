package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var ErrBadPointFile = errors.New("malformed point file")

/*
ReadPoints reads a scattered 2D point set in the layout of an SU2 mesh file:

	% comment
	NDIME= 2
	NPOIN= 4
	0.0 0.0 0
	1.0 0.0 1
	...

Any sections before NPOIN, such as NELEM and its element list, are skipped. The
optional third column of a point line, the SU2 point index, is ignored.
*/
func ReadPoints(r io.Reader) (X, Y []float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var ok bool
			if err, ok = rec.(error); !ok {
				err = fmt.Errorf("%v", rec)
			}
			err = errors.Wrap(ErrBadPointFile, err.Error())
			X, Y = nil, nil
		}
	}()
	reader := bufio.NewReader(r)
	for {
		key, token := getKeyToken(reader)
		switch key {
		case "NDIME":
			if dim := readNumber(token); dim != 2 {
				panic(fmt.Errorf("have %d dimensional data, need 2", dim))
			}
		case "NPOIN":
			X, Y = readVertices(readNumber(token), reader)
			return
		}
	}
}

func ReadPointsFile(filename string, verbose bool) (X, Y []float64, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading point file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		err = errors.Wrapf(err, "unable to open file %s", filename)
		return
	}
	defer file.Close()
	if X, Y, err = ReadPoints(file); err != nil {
		err = errors.Wrapf(err, "reading %s", filename)
		return
	}
	if verbose {
		fmt.Printf("Read %d points\n", len(X))
	}
	return
}

func readVertices(Nv int, reader *bufio.Reader) (X, Y []float64) {
	var (
		n    int
		x, y float64
		err  error
	)
	X, Y = make([]float64, Nv), make([]float64, Nv)
	for i := 0; i < Nv; i++ {
		line := getLineNoComments(reader)
		if n, err = fmt.Sscanf(line, "%f %f", &x, &y); err != nil {
			panic(fmt.Errorf("point %d: %s", i, err))
		}
		if n != 2 {
			panic("unable to read coordinates")
		}
		X[i], Y[i] = x, y
	}
	return
}

// getKeyToken splits the next "KEY= value" line, lines without an = are
// skipped
func getKeyToken(reader *bufio.Reader) (key, token string) {
	for {
		line := getLineNoComments(reader)
		ind := strings.Index(line, "=")
		if ind < 0 {
			continue
		}
		key = strings.TrimSpace(line[:ind])
		token = line[ind+1:]
		return
	}
}

func readNumber(token string) (num int) {
	var (
		err error
	)
	if _, err = fmt.Sscanf(token, "%d", &num); err != nil {
		err = fmt.Errorf("unable to read number from token: [%s]", token)
		panic(err)
	}
	return
}

func getLineNoComments(reader *bufio.Reader) (line string) {
	for {
		line = strings.TrimSpace(getLine(reader))
		if len(line) != 0 && !strings.HasPrefix(line, "%") {
			return
		}
	}
}

func getLine(reader *bufio.Reader) (line string) {
	var (
		err error
	)
	line, err = reader.ReadString('\n')
	if err != nil {
		// A final line may lack its newline
		if err == io.EOF && len(line) != 0 {
			return
		}
		if err == io.EOF {
			err = fmt.Errorf("early end of file")
		}
		panic(err)
	}
	line = strings.TrimRight(line, "\r\n")
	return
}
