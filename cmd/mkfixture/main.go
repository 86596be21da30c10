// mkfixture writes a small synthetic ATAC-seq results directory with every
// metric file pipelineqc reads, for demos and manual testing.
// Usage: go run ./cmd/mkfixture --out testdata/results --samples 3 --replicates 2
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	out := flag.String("out", "testdata/results", "output results directory")
	samples := flag.Int("samples", 2, "number of samples")
	replicates := flag.Int("replicates", 2, "replicates per sample")
	mito := flag.String("mito", "chrM", "mitochondrial reference name")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var written int

	write := func(rel, content string) {
		path := filepath.Join(*out, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write: %v\n", err)
			os.Exit(1)
		}
		written++
	}

	for s := 1; s <= *samples; s++ {
		sample := fmt.Sprintf("S%d", s)
		for r := 1; r <= *replicates; r++ {
			rep := fmt.Sprintf("%s_R%d", sample, r)
			run := rep + "_T1"
			pairs := 1_000_000 + rng.Int63n(4_000_000)

			write(filepath.Join("trim_adapters", run+".cutadapt.log"), cutadaptLog(pairs))
			write(filepath.Join("align", run+".mkD.sorted.bam.flagstat"), flagstat(2*pairs, 0.97))
			write(filepath.Join("align", run+".mkD.sorted.bam.idxstats"), idxstats(rng, *mito, 2*pairs))
			write(filepath.Join("align", "picard_metrics", run+".mkD.CollectMultipleMetrics.insert_size_metrics"), insertMetrics(rng))
			write(filepath.Join("align", run+".clN.sorted.bam.flagstat"), flagstat(2*pairs*8/10, 1.0))
			write(filepath.Join("align", run+".clN.sorted.bam.idxstats"), idxstats(rng, *mito, 2*pairs*8/10))

			repDir := filepath.Join("align", "replicateLevel")
			write(filepath.Join(repDir, rep+".RpL.rmD.sorted.bam.flagstat"), flagstat(2*pairs*7/10, 1.0))
			write(filepath.Join(repDir, "macs2", rep+"_peaks.broadPeak"), peaks(rng, 50+rng.Intn(200)))
			write(filepath.Join(repDir, "macs2", rep+"_peaks.frip.txt"), fmt.Sprintf("%.4f\n", 0.1+rng.Float64()/3))
		}

		smpDir := filepath.Join("align", "sampleLevel")
		total := int64(2_000_000 + rng.Int63n(4_000_000))
		write(filepath.Join(smpDir, sample+".SmL.rmD.sorted.bam.flagstat"), flagstat(total, 1.0))
		write(filepath.Join(smpDir, "macs2", sample+"_peaks.broadPeak"), peaks(rng, 100+rng.Intn(300)))
		write(filepath.Join(smpDir, "macs2", sample+"_peaks.frip.txt"), fmt.Sprintf("%.4f\n", 0.1+rng.Float64()/3))
	}

	fmt.Printf("Wrote %d files to %s\n", written, *out)
}

func cutadaptLog(pairs int64) string {
	pass := pairs * 99 / 100
	bases := pairs * 150
	return fmt.Sprintf(`This is cutadapt 1.18 with Python 3.6.7
Processing reads on 1 core in paired-end mode ...

=== Summary ===

Total read pairs processed:          %d
Pairs that were too short:           %d
Pairs written (passing filters):     %d

Total basepairs processed: %d bp
Total written (filtered):  %d bp
`, pairs, pairs-pass, pass, 2*bases, 2*bases*93/100)
}

func flagstat(total int64, mappedFrac float64) string {
	mapped := int64(float64(total) * mappedFrac)
	proper := mapped * 98 / 100
	dups := total / 10
	return fmt.Sprintf(`%d + 0 in total (QC-passed reads + QC-failed reads)
0 + 0 secondary
0 + 0 supplementary
%d + 0 duplicates
%d + 0 mapped
%d + 0 paired in sequencing
%d + 0 read1
%d + 0 read2
%d + 0 properly paired
%d + 0 with itself and mate mapped
0 + 0 singletons
0 + 0 with mate mapped to a different chr
0 + 0 with mate mapped to a different chr (mapQ>=5)
`, total, dups, mapped, total, total/2, total/2, proper, mapped)
}

func idxstats(rng *rand.Rand, mito string, mapped int64) string {
	chrM := mapped * int64(5+rng.Intn(30)) / 100
	rest := mapped - chrM
	var b strings.Builder
	fmt.Fprintf(&b, "chr1\t248956422\t%d\t0\n", rest/2)
	fmt.Fprintf(&b, "chr2\t242193529\t%d\t0\n", rest-rest/2)
	fmt.Fprintf(&b, "%s\t16569\t%d\t0\n", mito, chrM)
	b.WriteString("*\t0\t0\t1024\n")
	return b.String()
}

func insertMetrics(rng *rand.Rand) string {
	mean := 180 + rng.Float64()*60
	return fmt.Sprintf(`## htsjdk.samtools.metrics.StringHeader
# CollectMultipleMetrics

## METRICS CLASS	picard.analysis.InsertSizeMetrics
MEDIAN_INSERT_SIZE	MODE_INSERT_SIZE	MIN_INSERT_SIZE	MAX_INSERT_SIZE	MEAN_INSERT_SIZE	STANDARD_DEVIATION	READ_PAIRS	PAIR_ORIENTATION
%d	58	20	%d	%.6f	%.6f	%d	FR

## HISTOGRAM	java.lang.Integer
insert_size	All_Reads.fr_count
20	120
`, int(mean)-20, 100000+rng.Intn(900000), mean, mean*0.6, 1000000+rng.Intn(1000000))
}

func peaks(rng *rand.Rand, n int) string {
	var b strings.Builder
	pos := 10000
	for i := 0; i < n; i++ {
		pos += 500 + rng.Intn(20000)
		fmt.Fprintf(&b, "chr1\t%d\t%d\tpeak_%d\t%d\t.\t%.5f\t%.5f\t%.5f\n",
			pos, pos+200+rng.Intn(800), i+1, 10+rng.Intn(200), 2+rng.Float64()*4, 3+rng.Float64()*10, 1+rng.Float64()*8)
	}
	return b.String()
}
