// Command stampede fires N concurrent enrollment requests at a single
// course and tallies the outcomes. Used to verify that a full course
// admits exactly capacity students under contention.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

type outcome struct {
	Status int
	Code   string
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080/api/v1", "API base URL")
	courseID := flag.Int64("course", 1, "course ID to enroll into")
	students := flag.Int("students", 50, "number of concurrent students")
	firstStudent := flag.Int64("first-student", 1, "ID of the first student; IDs are consecutive")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	client := &http.Client{Timeout: *timeout}
	payload, err := json.Marshal(map[string]int64{"course_id": *courseID})
	if err != nil {
		log.Fatalf("marshal payload: %v", err)
	}

	results := make([]outcome, *students)
	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < *students; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			studentID := *firstStudent + int64(i)
			url := fmt.Sprintf("%s/students/%d/enrollments", *baseURL, studentID)
			resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
			if err != nil {
				results[i] = outcome{Status: -1, Code: err.Error()}
				return
			}
			defer resp.Body.Close()

			var body struct {
				Code string `json:"code"`
			}
			_ = json.NewDecoder(resp.Body).Decode(&body)
			code := body.Code
			if resp.StatusCode == http.StatusCreated {
				code = "ENROLLED"
			}
			results[i] = outcome{Status: resp.StatusCode, Code: code}
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(start)

	tally := make(map[string]int)
	for _, r := range results {
		tally[fmt.Sprintf("%d %s", r.Status, r.Code)] += 1
	}
	keys := make([]string, 0, len(tally))
	for k := range tally {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%d requests against course %d in %s\n", *students, *courseID, elapsed)
	for _, k := range keys {
		fmt.Printf("  %5d  %s\n", tally[k], k)
	}

	if tally[fmt.Sprintf("%d ENROLLED", http.StatusCreated)] == 0 {
		os.Exit(1)
	}
}
