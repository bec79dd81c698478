// Command mpmc runs a multi-producer multi-consumer demo over one
// amsterdam channel: every producer pushes a fixed number of messages and
// every consumer pops until the channel reports that all senders hung up.
//
// Usage:
//
//	go run ./cmd/mpmc -producers 4 -consumers 16 -messages 8
//
// With -metrics-addr set, queue depth and live handle counts are exported
// as Prometheus gauges, and pprof is served on the same listener.
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"

	"github.com/Gregory-Meyer/amsterdam"
)

// message is one demo payload. The UUID makes a single delivery easy to
// trace from producer to consumer in the logs.
type message struct {
	ID       uuid.UUID
	Producer int
	Seq      int
}

var (
	queueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mpmc_queue_depth",
		Help: "values currently queued in the channel",
	})
	liveHandles = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mpmc_live_handles",
			Help: "live sender and receiver handles",
		},
		[]string{"side"},
	)
	deliveredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mpmc_delivered_total",
		Help: "messages delivered to consumers",
	})
)

func init() {
	prometheus.MustRegister(queueDepth, liveHandles, deliveredTotal)
}

func main() {
	producers := flag.Int("producers", 4, "number of producer goroutines")
	consumers := flag.Int("consumers", 16, "number of consumer goroutines")
	messages := flag.Int("messages", 8, "messages pushed by each producer")
	delay := flag.Duration("delay", 100*time.Millisecond, "pause between pushes from one producer")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics and pprof on this address (empty disables)")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	tx, rx := amsterdam.New[message]()

	var stopSampling chan struct{}
	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			logger.Fatalln(http.ListenAndServe(*metricsAddr, nil))
		}()

		stopSampling = make(chan struct{})
		statsRx := rx.Clone()
		go func() {
			defer statsRx.Close()
			tick := time.NewTicker(100 * time.Millisecond)
			defer tick.Stop()
			for {
				select {
				case <-stopSampling:
					return
				case <-tick.C:
					stats := statsRx.Stats()
					queueDepth.Set(float64(stats.Len))
					liveHandles.WithLabelValues("senders").Set(float64(stats.Senders))
					liveHandles.WithLabelValues("receivers").Set(float64(stats.Receivers))
				}
			}
		}()
	}

	var delivered atomic.Int64

	var consumerGroup conc.WaitGroup
	for c := range *consumers {
		crx := rx.Clone()
		consumerGroup.Go(func() {
			defer crx.Close()
			for {
				msg, err := crx.Pop()
				if err != nil {
					// All producers hung up and the queue is drained.
					logger.WithField("consumer", c).Debug("channel drained")
					return
				}
				delivered.Add(1)
				deliveredTotal.Inc()
				logger.WithFields(logrus.Fields{
					"consumer": c,
					"producer": msg.Producer,
					"seq":      msg.Seq,
					"id":       msg.ID,
				}).Info("consumed")
			}
		})
	}
	rx.Close()

	var producerGroup conc.WaitGroup
	for p := range *producers {
		ptx := tx.Clone()
		producerGroup.Go(func() {
			defer ptx.Close()
			for seq := range *messages {
				msg := message{
					ID:       uuid.Must(uuid.NewV4()),
					Producer: p,
					Seq:      seq,
				}
				if err := ptx.Push(msg); err != nil {
					logger.WithError(err).WithField("producer", p).Warn("push refused")
					return
				}
				logger.WithFields(logrus.Fields{
					"producer": p,
					"seq":      seq,
					"id":       msg.ID,
				}).Info("produced")
				time.Sleep(*delay)
			}
		})
	}
	tx.Close()

	producerGroup.Wait()
	consumerGroup.Wait()
	if stopSampling != nil {
		close(stopSampling)
	}

	logger.WithFields(logrus.Fields{
		"delivered": delivered.Load(),
		"expected":  *producers * *messages,
	}).Info("demo finished")
}
