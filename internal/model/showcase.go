package model

// showcase is the fixed document every command renders. It is built once
// at package load and never mutated; Showcase hands out the same pointer
// to every caller.
var showcase = &Paper{
	Title:    "Adaptive Batch Scheduling for Low-Latency Query Pipelines",
	Subtitle: "A Measurement Study of Cache-Aware Workload Shaping",
	Authors: []Author{
		{Name: "Elena Vasquez", Affiliation: "Institute for Systems Research"},
		{Name: "Daniel Okonkwo", Affiliation: "Department of Computer Science, Meridian University"},
		{Name: "Priya Raman", Affiliation: "Distributed Computing Laboratory"},
	},
	Abstract: "Interactive query pipelines are commonly tuned for aggregate " +
		"throughput, leaving median and tail latency to degrade under mixed " +
		"workloads. We present an adaptive batch scheduler that shapes incoming " +
		"work around cache residency rather than arrival order, re-forming " +
		"batches whenever the observed hit rate drifts from its target band. " +
		"Across a replayed production trace of 14 million queries, the tuned " +
		"scheduler cut median latency by 42%, raised sustained throughput 3.2x " +
		"at the saturation point, and reduced peak resident memory by 28% " +
		"without degrading result freshness.",
	Sections: []Section{
		{
			Heading: "1. Introduction",
			Paragraphs: []string{
				"Query pipelines that serve interactive dashboards face a " +
					"tension that batch-oriented schedulers were never designed " +
					"to resolve: the batch sizes that maximize scan throughput " +
					"also maximize the time a short query waits behind a long " +
					"one. Operators today pick a fixed batch size offline and " +
					"accept whichever side of the trade-off their workload " +
					"lands on.",
				"This paper argues that the batch boundary itself is the " +
					"wrong tuning knob. Instead of asking how many queries to " +
					"group, we ask which queries already share working sets, " +
					"and let the scheduler re-form batches as cache residency " +
					"shifts. The result is a scheduler with one observable " +
					"control signal and no workload-specific constants.",
			},
		},
		{
			Heading: "2. Methodology",
			Paragraphs: []string{
				"We replayed a 14 million query production trace against an " +
					"eight-node cluster, comparing the stock FIFO batcher with " +
					"the adaptive scheduler under identical placement, cache " +
					"sizing, and admission limits. Every run was repeated five " +
					"times and we report medians of the per-run aggregates.",
				"Latency is measured from admission to last byte of the " +
					"result, so scheduler-induced queueing is charged to the " +
					"scheduler rather than hidden behind service time. Memory " +
					"figures are peak resident set sampled at one second " +
					"intervals across the whole replay.",
			},
		},
		{
			Heading: "3. Results",
			Paragraphs: []string{
				"The headline effect is on the median: re-forming batches " +
					"around shared working sets cut p50 latency from 45ms to " +
					"26ms, a 42% reduction, while the p99 fell from 128ms to " +
					"67ms. Throughput at the saturation point rose from 2450 " +
					"to 7840 queries per second as cache hit rates stabilized " +
					"inside the target band.",
				"Memory behavior improved for the same reason latency did: " +
					"batches that share residency stop evicting each other, " +
					"and peak resident set fell from 256MB to 184MB per node. " +
					"The full breakdown appears in the benchmark table below.",
			},
		},
		{
			Heading: "4. Discussion",
			Paragraphs: []string{
				"The gains concentrate where working sets overlap, which is " +
					"exactly where fixed-size batching performs worst. On " +
					"adversarial traces with no shared residency the adaptive " +
					"scheduler degrades to the FIFO baseline within " +
					"measurement noise, which we consider the more important " +
					"property: the mechanism has no observed downside to " +
					"leave enabled.",
				"We deliberately stopped short of cross-node batch " +
					"migration. Residency signals are local, and shipping " +
					"them across the placement boundary reintroduces the " +
					"coordination cost the design set out to avoid. Extending " +
					"the hit-rate band to placement decisions remains future " +
					"work.",
			},
		},
	},
	Findings: []Finding{
		{
			Metric: "Median latency",
			Value:  "42%",
			Description: "Reduction in p50 response time across the full " +
				"replayed trace under the adaptive scheduler.",
			Source: "[3]",
		},
		{
			Metric: "Sustained throughput",
			Value:  "3.2x",
			Description: "Increase in queries served per second at the " +
				"saturation point of the eight-node cluster.",
			Source: "[5]",
		},
		{
			Metric: "Peak resident memory",
			Value:  "28%",
			Description: "Smaller per-node peak resident set once batches " +
				"stopped evicting each other's working sets.",
			Source: "[7]",
		},
	},
	Results: []BenchmarkRow{
		{Name: "Median latency (p50)", Baseline: "45ms", Tuned: "26ms", Change: "42%"},
		{Name: "Tail latency (p99)", Baseline: "128ms", Tuned: "67ms", Change: "48%"},
		{Name: "Throughput (queries/s)", Baseline: "2450", Tuned: "7840", Change: "3.2x"},
		{Name: "Peak resident memory", Baseline: "256MB", Tuned: "184MB", Change: "28%"},
	},
	References: []Reference{
		{
			ID:      1,
			Authors: "Almeida, R., Duarte, S.",
			Title:   "Workload-aware admission control for interactive analytics",
			Journal: "Journal of Data Engineering",
			Year:    "2019",
			Volume:  "31",
			Issue:   "2",
			Pages:   "88-104",
		},
		{
			ID:      2,
			Authors: "Berger, C.",
			Title:   "Cache residency as a first-class scheduling signal",
			Journal: "Proceedings of the Workshop on Hot Topics in Storage",
			Year:    "2020",
		},
		{
			ID:      3,
			Authors: "Vasquez, E., Okonkwo, D.",
			Title:   "Latency profiles of batched execution under mixed workloads",
			Journal: "Transactions on Parallel Systems",
			Year:    "2021",
			Volume:  "12",
			Issue:   "4",
			Pages:   "211-226",
		},
		{
			ID:      4,
			Authors: "Huang, L., Petrov, A., Salim, N.",
			Title:   "Trace replay fidelity in cluster benchmarking",
			Journal: "Measurement and Modeling of Computer Systems",
			Year:    "2018",
			Pages:   "45-57",
		},
		{
			ID:      5,
			Authors: "Raman, P., Vasquez, E.",
			Title:   "Saturation behavior of shared-scan query engines",
			Journal: "Journal of Systems Research",
			Year:    "2022",
			Volume:  "7",
			Issue:   "1",
			Pages:   "1-19",
		},
		{
			ID:      6,
			Authors: "Keller, M.",
			Title:   "On the limits of static batch sizing",
			Journal: "Operating Systems Review",
			Year:    "2017",
			Volume:  "51",
			Issue:   "3",
		},
		{
			ID:      7,
			Authors: "Okonkwo, D., Lindqvist, H.",
			Title:   "Arena allocation for columnar row caches",
			Journal: "Proceedings of the Conference on Memory Management",
			Year:    "2023",
			Pages:   "132-147",
		},
		{
			ID:      8,
			Authors: "Sato, K., Moreau, J.",
			Title:   "Adaptive control loops in storage schedulers: a survey",
			Journal: "Computing Surveys",
			Year:    "2020",
			Volume:  "52",
			Issue:   "6",
		},
	},
	Venue:         "Proceedings of the 31st Symposium on Networked Systems, 2024",
	Award:         "Recipient of the Best Paper Award, 31st Symposium on Networked Systems.",
	DownloadLabel: "Download PDF",
}

// Showcase returns the fixed showcase paper.
//
// The returned pointer is shared by all callers and must be treated as
// read-only. Idempotent rendering depends on this document never
// changing after package load.
func Showcase() *Paper {
	return showcase
}
