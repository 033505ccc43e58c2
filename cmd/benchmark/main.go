package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/limaJavier/coursetable/pkg/export"
	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/limaJavier/coursetable/pkg/planner"
	"github.com/samber/lo"
)

const (
	executablePath             = "../../bin/coursetable"
	instancesDirectory         = "../../test/instances/"
	MB                 float32 = 1024 * 1024
)

type StrategyType int

const (
	sequential StrategyType = iota
	parallel
)

type ResultType int

const (
	solved ResultType = iota
	infeasible
)

var (
	strategyTypes = map[StrategyType]string{
		sequential: "sequential",
		parallel:   "parallel",
	}
	resultTypes = map[ResultType]string{
		solved:     "solved",
		infeasible: "infeasible",
	}
)

type InstanceMetadata struct {
	Name             string
	Courses          int
	OptionsPerCourse int
	SlotsPerOption   int
	Seed             uint64
}

type BenchmarkResult struct {
	Strategy      StrategyType
	Instance      InstanceMetadata
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Timetables    int
	Explored      uint64
	Partial       bool
	Result        ResultType
}

func main() {
	instances := getInstances()
	strategies := []StrategyType{sequential, parallel}
	results := make([]BenchmarkResult, 0, len(instances)*len(strategies))

	for _, instance := range instances {
		for _, strategy := range strategies {
			fmt.Printf("Benchmarking instance \"%v\" with strategy \"%v\"\n", instance.Name, strategyTypes[strategy])

			result := measure(strategy, instance)
			results = append(results, result)
		}
	}

	toCsv(results)
}

// Writes one plan file per instance size into instancesDirectory. Instances are seeded so every run
// benchmarks the same plans
func getInstances() []InstanceMetadata {
	if err := os.MkdirAll(instancesDirectory, 0755); err != nil {
		log.Fatalf("cannot create instances directory: %v", err)
	}

	instances := make([]InstanceMetadata, 0)
	for _, courses := range []int{4, 6, 8, 10} {
		for _, tuple := range lo.Zip2([]int{3, 5, 8}, []int{2, 3, 4}) {
			options, slots := tuple.A, tuple.B
			instance := InstanceMetadata{
				Name:             filepath.Join(instancesDirectory, fmt.Sprintf("c%d_o%d_s%d.json", courses, options, slots)),
				Courses:          courses,
				OptionsPerCourse: options,
				SlotsPerOption:   slots,
				Seed:             uint64(courses*100 + options*10 + slots),
			}

			content, err := json.MarshalIndent(generatePlan(instance), "", "  ")
			if err != nil {
				log.Fatalf("cannot marshal plan: %v", err)
			}
			if err := os.WriteFile(instance.Name, content, 0644); err != nil {
				log.Fatalf("cannot write plan file: %v", err)
			}
			instances = append(instances, instance)
		}
	}
	return instances
}

// Builds a plan of manual courses whose options are random sets of distinct slots
func generatePlan(instance InstanceMetadata) planner.Plan {
	r := rand.New(rand.NewPCG(instance.Seed, instance.Seed))
	return planner.Plan{
		Courses: lo.Times(instance.Courses, func(i int) planner.PlanCourse {
			return planner.PlanCourse{
				Code:  fmt.Sprintf("SYN F%03d", i+1),
				Title: fmt.Sprintf("Synthetic course %d", i+1),
				Slots: lo.Times(instance.OptionsPerCourse, func(_ int) string {
					return model.FormatOption(randomOption(r, instance.SlotsPerOption))
				}),
			}
		}),
	}
}

func randomOption(r *rand.Rand, slots int) model.SlotOption {
	slots = min(slots, model.Days*model.Hours)
	option := make(model.SlotOption, 0, slots)
	for len(option) < slots {
		slot := model.TimeSlot{Day: r.IntN(model.Days), Hour: 1 + r.IntN(model.Hours)}
		if !lo.Contains(option, slot) {
			option = append(option, slot)
		}
	}
	return option
}

func measure(strategy StrategyType, instance InstanceMetadata) BenchmarkResult {
	args := []string{"-v", executablePath, "-plan", instance.Name}
	if strategy == parallel {
		args = append(args, "-parallel")
	}
	cmd := exec.Command("/usr/bin/time", args...)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	result := BenchmarkResult{Strategy: strategy, Instance: instance}

	cmd.Run()
	if cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		log.Fatalf("an error occurred during the execution \"coursetable\" at instance \"%v\" using strategy \"%v\": %v\n", instance.Name, strategyTypes[strategy], stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		result.Result = infeasible
	} else {
		result.Result = solved

		var view export.ResultView
		if err := json.Unmarshal(stdOut.Bytes(), &view); err != nil {
			log.Fatalf("cannot parse output of instance \"%v\": %v", instance.Name, err)
		}
		result.Timetables = len(view.Timetables)
		result.Explored = view.Explored
		result.Partial = view.Partial
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	result.Duration = parseDurationLine(getLine("wall clock"))
	result.Memory = parseMemoryLine(getLine("maximum resident set size"))
	result.CpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Strategy", "Instance", "Courses", "Options", "Slots", "Seed", "Duration(ms)", "Memory(MB)", "CPU(%)", "Timetables", "Explored", "Partial", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			strategyTypes[result.Strategy],
			result.Instance.Name,
			fmt.Sprintf("%d", result.Instance.Courses),
			fmt.Sprintf("%d", result.Instance.OptionsPerCourse),
			fmt.Sprintf("%d", result.Instance.SlotsPerOption),
			fmt.Sprintf("%d", result.Instance.Seed),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
			fmt.Sprintf("%d", result.Timetables),
			fmt.Sprintf("%d", result.Explored),
			fmt.Sprintf("%v", result.Partial),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

// time -v reports the resident set size in kilobytes
func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) * 1024 / MB
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
