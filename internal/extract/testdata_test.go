package extract

const cutadaptPELog = `This is cutadapt 1.18 with Python 3.6.7
Command line parameters: -a CTGTCTCTTATA -A CTGTCTCTTATA -o A_R1.trim.fq.gz -p A_R2.trim.fq.gz A_R1.fq.gz A_R2.fq.gz
Processing reads on 1 core in paired-end mode ...
Finished in 120.35 s (12 us/read; 4.99 M reads/minute).

=== Summary ===

Total read pairs processed:         10,000,000
  Read 1 with adapter:               3,412,110 (34.1%)
  Read 2 with adapter:               3,398,551 (34.0%)
Pairs that were too short:              99,412 (1.0%)
Pairs written (passing filters):     9,900,588 (99.0%)

Total basepairs processed: 1,500,000,000 bp
  Read 1:   750,000,000 bp
  Read 2:   750,000,000 bp
Total written (filtered):  1,402,113,954 bp (93.5%)
  Read 1:   701,202,117 bp
  Read 2:   700,911,837 bp
`

const flagstatReport = `1000 + 0 in total (QC-passed reads + QC-failed reads)
0 + 0 secondary
0 + 0 supplementary
120 + 0 duplicates
950 + 0 mapped (95.00% : N/A)
1000 + 0 paired in sequencing
500 + 0 read1
500 + 0 read2
900 + 0 properly paired (90.00% : N/A)
940 + 0 with itself and mate mapped
10 + 0 singletons (1.00% : N/A)
6 + 0 with mate mapped to a different chr
3 + 0 with mate mapped to a different chr (mapQ>=5)
`

const idxstatsReport = "chr1\t248956422\t900\t3\nchrM\t16569\t100\t0\n*\t0\t0\t42\n"

const insertMetricsReport = `## htsjdk.samtools.metrics.StringHeader
# CollectMultipleMetrics INPUT=A_R1.mkD.sorted.bam OUTPUT=A_R1.mkD.CollectMultipleMetrics
## htsjdk.samtools.metrics.StringHeader
# Started on: Mon Aug 06 10:00:00 BST 2018

## METRICS CLASS	picard.analysis.InsertSizeMetrics
MEDIAN_INSERT_SIZE	MODE_INSERT_SIZE	MEDIAN_ABSOLUTE_DEVIATION	MIN_INSERT_SIZE	MAX_INSERT_SIZE	MEAN_INSERT_SIZE	STANDARD_DEVIATION	READ_PAIRS	PAIR_ORIENTATION
171	58	81	20	248887011	208.413911	134.772466	4702510	FR
54	31	19	20	98001	73.1	40.2	1201	RF

## HISTOGRAM	java.lang.Integer
insert_size	All_Reads.fr_count
20	120
21	133
`
