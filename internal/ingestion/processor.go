package ingestion

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"shipment-dashboard/internal/domain/inventory"
	"shipment-dashboard/internal/domain/telemetry"
	"shipment-dashboard/internal/logger"
)

// EntryBroadcaster pushes freshly ingested entries to live subscribers.
type EntryBroadcaster interface {
	BroadcastEntry(entry *telemetry.ReportEntry)
}

// Processor turns incoming tracker messages into stored report entries:
// report messages fan out to a worker pool, locations are cached per
// gateway and stamped onto subsequent reports, and inserts happen in
// batches flushed by size or timeout.
type Processor struct {
	telemetryRepo telemetry.Repository
	inventoryRepo inventory.Repository
	alertEngine   *AlertEngine
	broadcaster   EntryBroadcaster

	buffer        []*telemetry.ReportEntry
	locationCache map[string]*LocationMessage

	batchSize    int
	batchTimeout time.Duration
	workerCount  int

	reportChan   chan *ReportMessage
	locationChan chan *LocationMessage

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex

	metrics *MetricsTracker
}

func NewProcessor(
	telemetryRepo telemetry.Repository,
	inventoryRepo inventory.Repository,
	alertEngine *AlertEngine,
	broadcaster EntryBroadcaster,
	batchSize, workerCount, bufferSize int,
	batchTimeout time.Duration,
) *Processor {
	ctx, cancel := context.WithCancel(context.Background())

	return &Processor{
		telemetryRepo: telemetryRepo,
		inventoryRepo: inventoryRepo,
		alertEngine:   alertEngine,
		broadcaster:   broadcaster,
		buffer:        make([]*telemetry.ReportEntry, 0, batchSize),
		locationCache: make(map[string]*LocationMessage),
		batchSize:     batchSize,
		batchTimeout:  batchTimeout,
		workerCount:   workerCount,
		reportChan:    make(chan *ReportMessage, bufferSize),
		locationChan:  make(chan *LocationMessage, bufferSize),
		ctx:           ctx,
		cancel:        cancel,
		metrics:       NewMetricsTracker(),
	}
}

// Start launches the workers and the batch flusher.
func (p *Processor) Start() {
	logger.Info("Starting ingestion processor",
		zap.Int("workers", p.workerCount),
		zap.Int("batch_size", p.batchSize),
		zap.Duration("batch_timeout", p.batchTimeout),
	)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.reportWorker(i)
	}

	p.wg.Add(1)
	go p.locationWorker()

	p.wg.Add(1)
	go p.batchFlusher()
}

// Stop drains the workers and flushes the remaining buffer.
func (p *Processor) Stop() {
	logger.Info("Stopping ingestion processor")

	p.cancel()
	close(p.reportChan)
	close(p.locationChan)
	p.wg.Wait()

	p.flush()

	logger.Info("Ingestion processor stopped")
}

// EnqueueReport queues a report message, dropping it when the buffer is
// full.
func (p *Processor) EnqueueReport(msg *ReportMessage) {
	select {
	case p.reportChan <- msg:
		p.metrics.Update(func(m *Metrics) {
			m.MessagesReceived++
			m.BufferSize = len(p.reportChan)
		})
	case <-p.ctx.Done():
	default:
		logger.Warn("Report buffer full, dropping message",
			zap.String("gateway_imei", msg.GatewayIMEI),
		)
		p.metrics.Update(func(m *Metrics) {
			m.MessagesFailed++
		})
	}
}

// EnqueueLocation queues a location fix.
func (p *Processor) EnqueueLocation(msg *LocationMessage) {
	if err := ValidateLocation(msg); err != nil {
		logger.Warn("Invalid location message", zap.Error(err))
		p.metrics.Update(func(m *Metrics) {
			m.MessagesFailed++
		})
		return
	}

	select {
	case p.locationChan <- msg:
		p.metrics.Update(func(m *Metrics) {
			m.MessagesReceived++
		})
	case <-p.ctx.Done():
	default:
		logger.Warn("Location buffer full, dropping message",
			zap.String("gateway_imei", msg.GatewayIMEI),
		)
		p.metrics.Update(func(m *Metrics) {
			m.MessagesFailed++
		})
	}
}

func (p *Processor) reportWorker(id int) {
	defer p.wg.Done()

	for {
		select {
		case msg, ok := <-p.reportChan:
			if !ok {
				return
			}

			start := time.Now()
			if err := p.processReport(msg); err != nil {
				logger.Warn("Failed to process report message",
					zap.Int("worker", id),
					zap.String("gateway_imei", msg.GatewayIMEI),
					zap.Error(err),
				)
				p.metrics.Update(func(m *Metrics) {
					m.MessagesFailed++
				})
				continue
			}

			p.metrics.Update(func(m *Metrics) {
				m.MessagesProcessed++
				m.LastProcessedAt = time.Now()
				elapsed := time.Since(start)
				if m.AverageProcessing == 0 {
					m.AverageProcessing = elapsed
				} else {
					m.AverageProcessing = (m.AverageProcessing + elapsed) / 2
				}
			})

		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Processor) locationWorker() {
	defer p.wg.Done()

	for {
		select {
		case msg, ok := <-p.locationChan:
			if !ok {
				return
			}

			p.mu.Lock()
			cached := p.locationCache[msg.GatewayIMEI]
			if cached == nil || msg.Timestamp.After(cached.Timestamp) {
				p.locationCache[msg.GatewayIMEI] = msg
			}
			p.mu.Unlock()

			p.metrics.Update(func(m *Metrics) {
				m.MessagesProcessed++
			})

		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Processor) processReport(msg *ReportMessage) error {
	if err := ValidateReport(msg); err != nil {
		return err
	}

	entry := toReportEntry(msg)

	p.mu.Lock()
	if loc := p.locationCache[msg.GatewayIMEI]; loc != nil {
		entry.Latitude = &loc.Latitude
		entry.Longitude = &loc.Longitude
	}
	p.mu.Unlock()

	// The alert engine also resolves the partner shipment ID for
	// entries that arrive without one.
	if p.alertEngine != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		alerts, err := p.alertEngine.Evaluate(ctx, entry)
		cancel()
		if err != nil {
			logger.Warn("Alert evaluation failed",
				zap.String("gateway_imei", entry.GatewayIMEI),
				zap.Error(err),
			)
		}
		if len(alerts) > 0 {
			p.metrics.Update(func(m *Metrics) {
				m.AlertsGenerated += int64(len(alerts))
			})
		}
	}

	p.mu.Lock()
	p.buffer = append(p.buffer, entry)
	shouldFlush := len(p.buffer) >= p.batchSize
	p.mu.Unlock()

	if shouldFlush {
		p.flush()
	}

	if p.broadcaster != nil {
		p.broadcaster.BroadcastEntry(entry)
	}

	go p.touchGateway(msg)

	return nil
}

func (p *Processor) touchGateway(msg *ReportMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := p.inventoryRepo.TouchGateway(ctx, msg.GatewayIMEI, msg.Timestamp, msg.Battery); err != nil {
		logger.Debug("Failed to update gateway last report",
			zap.String("gateway_imei", msg.GatewayIMEI),
			zap.Error(err),
		)
	}
}

func (p *Processor) batchFlusher() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.batchTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.flush()
		case <-p.ctx.Done():
			return
		}
	}
}

// flush writes the buffered entries in one batch insert.
func (p *Processor) flush() {
	p.mu.Lock()
	if len(p.buffer) == 0 {
		p.mu.Unlock()
		return
	}
	batch := make([]*telemetry.ReportEntry, len(p.buffer))
	copy(batch, p.buffer)
	p.buffer = p.buffer[:0]
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := p.telemetryRepo.InsertEntries(ctx, batch); err != nil {
		logger.Error("Failed to insert report entry batch",
			zap.Int("batch_size", len(batch)),
			zap.Error(err),
		)
		p.metrics.Update(func(m *Metrics) {
			m.MessagesFailed += int64(len(batch))
		})
		return
	}

	p.metrics.Update(func(m *Metrics) {
		m.EntriesInserted += int64(len(batch))
	})
}

// Snapshot returns current pipeline metrics.
func (p *Processor) Snapshot() Metrics {
	return p.metrics.Snapshot()
}

func toReportEntry(msg *ReportMessage) *telemetry.ReportEntry {
	entry := &telemetry.ReportEntry{
		PartnerShipmentID: msg.PartnerShipmentID,
		GatewayIMEI:       msg.GatewayIMEI,
		Timestamp:         msg.Timestamp,
		Humidity:          msg.Humidity,
		Light:             msg.Light,
		Shock:             msg.Shock,
		Tilt:              msg.Tilt,
		Battery:           msg.Battery,
		Pressure:          msg.Pressure,
		CreatedAt:         time.Now(),
	}
	if msg.TemperatureC != nil {
		f := CelsiusToFahrenheit(*msg.TemperatureC)
		entry.TemperatureC = msg.TemperatureC
		entry.TemperatureF = &f
	}
	if msg.ProbeTemperatureC != nil {
		f := CelsiusToFahrenheit(*msg.ProbeTemperatureC)
		entry.ProbeTemperatureC = msg.ProbeTemperatureC
		entry.ProbeTemperatureF = &f
	}
	return entry
}
