package bench

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
)

// Stat summarizes the samples of one operation, in nanoseconds.
type Stat struct {
	Mean   float64
	Median float64
	P99    float64
}

// Result holds the statistics of one backend at one input size.
type Result struct {
	Backend pqueue.Kind
	Size    int
	Stats   map[Operation]Stat
}

// Report is the outcome of Runner.Run, ordered by backend then size.
type Report struct {
	Kinds   []pqueue.Kind
	Sizes   []int
	Results []Result
}

func summarize(data stats.Float64Data) (Stat, error) {
	mean, err := data.Mean()
	if err != nil {
		return Stat{}, err
	}
	median, err := data.Median()
	if err != nil {
		return Stat{}, err
	}
	p99, err := data.Percentile(99)
	if err != nil {
		return Stat{}, err
	}
	return Stat{Mean: mean, Median: median, P99: p99}, nil
}

// Find returns the result for kind at size.
func (r *Report) Find(kind pqueue.Kind, size int) (Result, bool) {
	for _, res := range r.Results {
		if res.Backend == kind && res.Size == size {
			return res, true
		}
	}
	return Result{}, false
}

func formatNs(ns float64) string {
	return strconv.FormatFloat(ns, 'f', 1, 64)
}

// WriteCSV writes one row per backend and size holding the mean nanoseconds of each operation.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"Backend", "Size"}
	for _, op := range Operations() {
		header = append(header, string(op)+"(ns)")
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for _, res := range r.Results {
		row := []string{string(res.Backend), strconv.Itoa(res.Size)}
		for _, op := range Operations() {
			row = append(row, formatNs(res.Stats[op].Mean))
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush csv")
}

// WriteTable renders the mean, median and p99 of every operation as a text table.
func (r *Report) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Backend", "Size", "Operation", "Mean (ns)", "Median (ns)", "P99 (ns)"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, res := range r.Results {
		for _, op := range Operations() {
			st := res.Stats[op]
			table.Append([]string{
				string(res.Backend),
				strconv.Itoa(res.Size),
				string(op),
				formatNs(st.Mean),
				formatNs(st.Median),
				formatNs(st.P99),
			})
		}
	}
	table.Render()
}

// WriteMetrics writes every metric family gathered from g in the Prometheus text format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "failed to write %s", mf.GetName())
		}
	}
	return nil
}

// WriteCSVFile writes the CSV report to path, replacing any existing file.
func (r *Report) WriteCSVFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()
	return r.WriteCSV(f)
}
