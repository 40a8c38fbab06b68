// The simulator hammers the booking path from many goroutines to exercise
// the reservation guard, then prints per-operation latency and outcome
// counts. It runs entirely in-process against a seeded registry.
package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/clinicware/clinic-management/internal/clinic"
	"github.com/clinicware/clinic-management/internal/config"
	"github.com/clinicware/clinic-management/internal/registry"
	"github.com/clinicware/clinic-management/internal/seed"
)

type SimConfig struct {
	Duration      time.Duration
	Workers       int
	BookingRatio  float64
	CancelRatio   float64
	CompleteRatio float64
	PaymentRatio  float64
}

type DataPool struct {
	Patients []*clinic.Patient
	Services []*clinic.Service

	mu           sync.RWMutex
	appointments []*clinic.Appointment
}

func (dp *DataPool) AddAppointment(a *clinic.Appointment) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.appointments = append(dp.appointments, a)
}

func (dp *DataPool) RandomAppointment() (*clinic.Appointment, bool) {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	if len(dp.appointments) == 0 {
		return nil, false
	}
	return dp.appointments[rand.Intn(len(dp.appointments))], true
}

type OperationMetrics struct {
	Total    int64
	Success  int64
	Conflict int64
	Error    int64

	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(latency time.Duration, success, conflict bool) {
	atomic.AddInt64(&om.Total, 1)
	switch {
	case success:
		atomic.AddInt64(&om.Success, 1)
	case conflict:
		atomic.AddInt64(&om.Conflict, 1)
	default:
		atomic.AddInt64(&om.Error, 1)
	}

	om.mu.Lock()
	om.latencies = append(om.latencies, latency)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (avg, min, max, p50, p95 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.latencies) == 0 {
		return 0, 0, 0, 0, 0
	}

	latencies := make([]time.Duration, len(om.latencies))
	copy(latencies, om.latencies)

	sort.Slice(latencies, func(i, j int) bool {
		return latencies[i] < latencies[j]
	})

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	avg = sum / time.Duration(len(latencies))
	min = latencies[0]
	max = latencies[len(latencies)-1]
	p50 = latencies[percentileIndex(len(latencies), 50)]
	p95 = latencies[percentileIndex(len(latencies), 95)]

	return avg, min, max, p50, p95
}

func percentileIndex(n, pct int) int {
	idx := n * pct / 100
	if idx >= n {
		idx = n - 1
	}
	return idx
}

type Metrics struct {
	Booking  OperationMetrics
	Cancel   OperationMetrics
	Complete OperationMetrics
	Payment  OperationMetrics
}

type Simulator struct {
	config  SimConfig
	admin   *clinic.Administrator
	reg     *registry.Registry
	pool    *DataPool
	metrics Metrics
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("simulator starting")

	simCfg := loadSimConfig()
	if err := validateSimConfig(simCfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	log.Printf("config: duration=%s workers=%d booking=%.2f cancel=%.2f complete=%.2f payment=%.2f",
		simCfg.Duration, simCfg.Workers, simCfg.BookingRatio, simCfg.CancelRatio, simCfg.CompleteRatio, simCfg.PaymentRatio)

	baseCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load base config: %v", err)
	}

	reg := registry.New()
	admin := clinic.NewAdministrator("Front", "Desk", "555-0100", "08:00-18:00")

	if err := seed.Populate(reg, admin, seed.Options{
		Doctors:     baseCfg.SeedDoctors,
		Patients:    baseCfg.SeedPatients,
		SlotsPerDay: baseCfg.SeedSlotsPerDay,
		Days:        baseCfg.SeedDays,
	}); err != nil {
		log.Fatalf("seed: %v", err)
	}

	pool := &DataPool{
		Patients: reg.Patients(),
		Services: reg.Services(),
	}

	log.Printf("loaded: %d patients, %d services", len(pool.Patients), len(pool.Services))

	sim := &Simulator{
		config: simCfg,
		admin:  admin,
		reg:    reg,
		pool:   pool,
	}

	sim.Run()
	sim.PrintReport()
}

func loadSimConfig() SimConfig {
	cfg := SimConfig{
		Duration:      getDuration("SIM_DURATION", 30*time.Second),
		Workers:       getInt("SIM_WORKERS", 10),
		BookingRatio:  getFloat("SIM_BOOKING_RATIO", 0.5),
		CancelRatio:   getFloat("SIM_CANCEL_RATIO", 0.1),
		CompleteRatio: getFloat("SIM_COMPLETE_RATIO", 0.2),
		PaymentRatio:  getFloat("SIM_PAYMENT_RATIO", 0.2),
	}

	total := cfg.BookingRatio + cfg.CancelRatio + cfg.CompleteRatio + cfg.PaymentRatio
	if total > 0 {
		cfg.BookingRatio /= total
		cfg.CancelRatio /= total
		cfg.CompleteRatio /= total
		cfg.PaymentRatio /= total
	}

	return cfg
}

func validateSimConfig(cfg SimConfig) error {
	if cfg.Workers <= 0 {
		return fmt.Errorf("SIM_WORKERS must be > 0")
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("SIM_DURATION must be > 0")
	}
	return nil
}

func (s *Simulator) Run() {
	deadline := time.Now().Add(s.config.Duration)

	var wg sync.WaitGroup
	for i := 0; i < s.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(deadline) {
				s.step()
			}
		}()
	}
	wg.Wait()
}

func (s *Simulator) step() {
	roll := rand.Float64()
	switch {
	case roll < s.config.BookingRatio:
		s.book()
	case roll < s.config.BookingRatio+s.config.CancelRatio:
		s.cancel()
	case roll < s.config.BookingRatio+s.config.CancelRatio+s.config.CompleteRatio:
		s.complete()
	default:
		s.pay()
	}
}

func (s *Simulator) book() {
	if len(s.pool.Patients) == 0 || len(s.pool.Services) == 0 {
		return
	}
	patient := s.pool.Patients[rand.Intn(len(s.pool.Patients))]
	service := s.pool.Services[rand.Intn(len(s.pool.Services))]

	start := time.Now()
	appt, err := s.admin.CreateAppointment(patient, service)
	latency := time.Since(start)

	if err != nil {
		s.metrics.Booking.Record(latency, false, errors.Is(err, clinic.ErrNoAvailability))
		return
	}

	s.reg.AddAppointment(appt)
	s.pool.AddAppointment(appt)
	s.metrics.Booking.Record(latency, true, false)
}

func (s *Simulator) cancel() {
	appt, ok := s.pool.RandomAppointment()
	if !ok {
		return
	}

	start := time.Now()
	err := appt.Cancel("patient request")
	latency := time.Since(start)

	s.metrics.Cancel.Record(latency, err == nil, errors.Is(err, clinic.ErrInvalidTransition))
}

func (s *Simulator) complete() {
	appt, ok := s.pool.RandomAppointment()
	if !ok {
		return
	}

	start := time.Now()
	err := appt.Complete("visit finished")
	latency := time.Since(start)

	s.metrics.Complete.Record(latency, err == nil, errors.Is(err, clinic.ErrInvalidTransition))
}

func (s *Simulator) pay() {
	appt, ok := s.pool.RandomAppointment()
	if !ok {
		return
	}

	start := time.Now()
	_, err := s.admin.ProcessPayment(appt)
	latency := time.Since(start)

	s.metrics.Payment.Record(latency, err == nil, errors.Is(err, clinic.ErrAlreadyPaid))
}

func (s *Simulator) PrintReport() {
	fmt.Println()
	fmt.Println("=== simulation report ===")
	printOp("booking", &s.metrics.Booking)
	printOp("cancel", &s.metrics.Cancel)
	printOp("complete", &s.metrics.Complete)
	printOp("payment", &s.metrics.Payment)
}

func printOp(name string, om *OperationMetrics) {
	total := atomic.LoadInt64(&om.Total)
	if total == 0 {
		fmt.Printf("%-10s no operations\n", name)
		return
	}
	avg, min, max, p50, p95 := om.Stats()
	fmt.Printf("%-10s total=%d success=%d conflict=%d error=%d avg=%s min=%s max=%s p50=%s p95=%s\n",
		name,
		total,
		atomic.LoadInt64(&om.Success),
		atomic.LoadInt64(&om.Conflict),
		atomic.LoadInt64(&om.Error),
		avg, min, max, p50, p95,
	)
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
