package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"smartraw-backend/internal/dto"
	"smartraw-backend/internal/repository"
)

// StockMonitor periodically reports products that have fallen below their
// advisory threshold. It only observes; nothing here blocks a sale.
type StockMonitor struct {
	productRepo   repository.ProductRepository
	kafkaProducer *kafka.Conn
}

func CreateStockMonitor(productRepo repository.ProductRepository, kafkaProducer *kafka.Conn) *StockMonitor {
	return &StockMonitor{
		productRepo:   productRepo,
		kafkaProducer: kafkaProducer,
	}
}

func (m *StockMonitor) SweepLowStock(ctx context.Context) error {
	products, err := m.productRepo.GetLowStockProducts(ctx)
	if err != nil {
		return err
	}

	for _, product := range products {
		log.Ctx(ctx).Warn().
			Str("product_id", product.ID.Hex()).
			Str("name", product.Name).
			Int64("stock", product.Stock).
			Int64("threshold", product.StockThreshold).
			Msg("Product below stock threshold")

		m.publishLowStock(ctx, dto.LowStockEvent{
			ProductID:      product.ID.Hex(),
			Name:           product.Name,
			Stock:          product.Stock,
			StockThreshold: product.StockThreshold,
		})
	}

	return nil
}

func (m *StockMonitor) publishLowStock(ctx context.Context, event dto.LowStockEvent) {
	if m.kafkaProducer == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.KafkaMessage{EventType: "low_stock", Data: event})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishLowStock").Msg("")
		return
	}

	m.kafkaProducer.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if _, err := m.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishLowStock").Msg("")
	}
}
