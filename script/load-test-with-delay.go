package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/auth"
	timeProvider "github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/time"
)

// StartRequest mirrors the body of POST /sessions
type StartRequest struct {
	LockerID             uint64  `json:"locker_id"`
	PlannedDurationHours float64 `json:"planned_duration_hours"`
}

// SessionReply holds the fields of a session response the test needs
type SessionReply struct {
	ID        uint64 `json:"id"`
	AmountDue string `json:"amount_due"`
}

// TestResult contains metrics for a single start/finish cycle
type TestResult struct {
	Success      bool
	Conflict     bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	ConflictRequests   int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	LockerStats        map[uint64]int
	Lock               sync.Mutex
}

type client struct {
	http    *http.Client
	baseURL string
	tokens  *auth.TokenManager
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of start/finish cycles")
	usersFlag := flag.Int("users", 20, "Number of distinct user IDs to spread load across")
	lockersFlag := flag.String("l", "1,2,3", "Comma-separated list of locker IDs to compete for")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", "", "JWT secret; when empty the X-User-ID header is sent instead")
	issuer := flag.String("issuer", "locker-rental", "JWT issuer")
	delayMs := flag.Int("delay", 100, "Delay between cycles in milliseconds")
	flag.Parse()

	var lockerIDs []uint64
	for _, idStr := range strings.Split(*lockersFlag, ",") {
		var id uint64
		if _, err := fmt.Sscanf(strings.TrimSpace(idStr), "%d", &id); err == nil && id > 0 {
			lockerIDs = append(lockerIDs, id)
		}
	}
	if len(lockerIDs) == 0 {
		lockerIDs = []uint64{1}
	}
	if *usersFlag < 1 {
		*usersFlag = 1
	}

	c := &client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(*baseURL, "/"),
	}
	if *secret != "" {
		c.tokens = auth.NewTokenManager(*secret, *issuer, 60, timeProvider.NewRealTimeProvider())
	}

	fmt.Printf("Load testing %d lockers %v with %d users\n", len(lockerIDs), lockerIDs, *usersFlag)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total cycles: %d\n", *totalRequests)
	fmt.Printf("Delay between cycles: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		LockerStats:     make(map[uint64]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(c, *delayMs, *usersFlag, lockerIDs, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			switch {
			case result.Success:
				stats.SuccessfulRequests++
			case result.Conflict:
				stats.ConflictRequests++
			default:
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.ConflictRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d cycles completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// worker starts a short session on a random locker and finishes it right
// away. Losing the race for a locker shows up as a 409 and is counted apart
// from real failures.
func worker(c *client, delayMs, users int, lockerIDs []uint64, jobs <-chan int, results chan<- TestResult, stats *TestStats) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := uint64(rand.Intn(users) + 1)
		lockerID := lockerIDs[rand.Intn(len(lockerIDs))]

		stats.Lock.Lock()
		stats.LockerStats[lockerID]++
		stats.Lock.Unlock()

		startTime := time.Now()
		result := c.cycle(userID, lockerID)
		result.ResponseTime = time.Since(startTime)
		results <- result
	}
}

func (c *client) cycle(userID, lockerID uint64) TestResult {
	var session SessionReply
	status, err := c.do(http.MethodPost, "/sessions", userID,
		StartRequest{LockerID: lockerID, PlannedDurationHours: 1}, &session)
	if err != nil {
		return TestResult{Error: err}
	}
	if status == http.StatusConflict {
		return TestResult{Conflict: true, StatusCode: status}
	}
	if status != http.StatusCreated {
		return TestResult{StatusCode: status, Error: fmt.Errorf("start: HTTP status code %d", status)}
	}

	status, err = c.do(http.MethodPut, fmt.Sprintf("/sessions/%d", session.ID), userID,
		map[string]string{"status": "finished", "payment_status": "paid"}, nil)
	if err != nil {
		return TestResult{Error: err}
	}
	if status != http.StatusOK {
		return TestResult{StatusCode: status, Error: fmt.Errorf("finish: HTTP status code %d", status)}
	}
	return TestResult{Success: true, StatusCode: status}
}

func (c *client) do(method, path string, userID uint64, body, out any) (int, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		token, _, err := c.tokens.GenerateToken(userID, "")
		if err != nil {
			return 0, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("X-User-ID", fmt.Sprint(userID))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func printResults(stats *TestStats) {
	cps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sorted := make([]time.Duration, len(stats.ResponseTimes))
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		p50 = sorted[len(sorted)*50/100]
		p90 = sorted[len(sorted)*90/100]
		p95 = sorted[len(sorted)*95/100]
		p99 = sorted[len(sorted)*99/100]
	}

	pct := func(n int) float64 { return float64(n) / float64(stats.TotalRequests) * 100 }

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Cycles:        %d\n", stats.TotalRequests)
	fmt.Printf("Completed Cycles:    %d (%.1f%%)\n", stats.SuccessfulRequests, pct(stats.SuccessfulRequests))
	fmt.Printf("Lost Races (409):    %d (%.1f%%)\n", stats.ConflictRequests, pct(stats.ConflictRequests))
	fmt.Printf("Failed Cycles:       %d (%.1f%%)\n", stats.FailedRequests, pct(stats.FailedRequests))
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Completed/sec:       %.2f\n", cps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Cycle:       %v\n", avgResponseTime)
	fmt.Printf("Minimum Cycle:       %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Cycle:       %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Cycle:           %v\n", p50)
	fmt.Printf("P90 Cycle:           %v\n", p90)
	fmt.Printf("P95 Cycle:           %v\n", p95)
	fmt.Printf("P99 Cycle:           %v\n", p99)

	fmt.Println("\n----------------- LOCKER DISTRIBUTION -----------------")
	for lockerID, count := range stats.LockerStats {
		fmt.Printf("Locker %d:    %d cycles (%.1f%%)\n", lockerID, count, pct(count))
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count, pct(count))
		}
	}

	fmt.Println("\n================= CONCLUSION =================")
	if stats.FailedRequests == 0 {
		fmt.Println("✅ Every cycle either completed or lost the race for its locker cleanly")
	} else {
		fmt.Printf("❌ %d cycles failed with unexpected errors\n", stats.FailedRequests)
	}
	fmt.Println("================================================")
}
