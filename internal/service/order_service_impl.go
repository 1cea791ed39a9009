package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/gomail.v2"

	"smartraw-backend/config"
	"smartraw-backend/internal/domain"
	"smartraw-backend/internal/dto"
	"smartraw-backend/internal/repository"
	"smartraw-backend/pkg/errs"
	"smartraw-backend/pkg/utils"
)

const deliveryLeadTime = 72 * time.Hour

type OrderServiceImpl struct {
	orderRepo     repository.OrderRepository
	userRepo      repository.UserRepository
	productRepo   repository.ProductRepository
	kafkaProducer *kafka.Conn
	emailBreaker  *gobreaker.CircuitBreaker[any]
	config        config.Config
}

func CreateOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, productRepo repository.ProductRepository, kafkaProducer *kafka.Conn, emailBreaker *gobreaker.CircuitBreaker[any], config config.Config) OrderService {
	return &OrderServiceImpl{
		orderRepo:     orderRepo,
		userRepo:      userRepo,
		productRepo:   productRepo,
		kafkaProducer: kafkaProducer,
		emailBreaker:  emailBreaker,
		config:        config,
	}
}

// PlaceOrder turns the submitted cart lines into an order. Each line's stock
// decrement is a single conditional update, so one line can never oversell a
// product. The lines themselves are NOT applied transactionally: if line N
// fails, the decrements of lines 1..N-1 stay committed. Callers see the whole
// request fail in that case, with the earlier stock already gone.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, userID string, payload dto.OrderRequest) (respPayload dto.PlaceOrderResponse, err error) {
	if len(payload.CartItems) == 0 {
		return respPayload, errs.ErrEmptyCart
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	var totalPrice float64
	var sellerID primitive.ObjectID
	orderItems := make([]domain.OrderItem, 0, len(payload.CartItems))

	for _, item := range payload.CartItems {
		if item.Quantity < 1 {
			return respPayload, errs.ErrClient
		}

		product, err := s.productRepo.GetProductByID(ctx, item.Product)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return respPayload, fmt.Errorf("%w: product %s", errs.ErrNotFound, item.Product)
			}
			return respPayload, err
		}

		applied, err := s.productRepo.DecrementProductStock(ctx, product.ID, item.Quantity)
		if err != nil {
			return respPayload, err
		}
		if !applied {
			return respPayload, fmt.Errorf("%w for %s. Available: %d", errs.ErrInsufficientStock, product.Name, product.Stock)
		}

		// the first line's seller owns the whole order, whatever the
		// remaining lines reference
		if sellerID.IsZero() {
			sellerID = product.SellerID
		}

		totalPrice += product.Price * float64(item.Quantity)
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	orderNumber, err := uuid.NewV7()
	if err != nil {
		return respPayload, fmt.Errorf("error generating order number: %v", err)
	}

	phone := user.Phone
	if phone == "" {
		phone = "N/A"
	}

	orderedAt := time.Now()
	order := domain.Order{
		OrderNumber:      orderNumber.String(),
		User:             user.ID,
		Seller:           sellerID,
		UserName:         user.Name,
		UserPhone:        phone,
		UserLocation:     user.Location,
		Items:            orderItems,
		TotalPrice:       totalPrice,
		OrderedAt:        orderedAt,
		ExpectedDelivery: orderedAt.Add(deliveryLeadTime),
		Status:           domain.OrderStatusPlaced,
	}

	orderID, err := s.orderRepo.AddOrder(ctx, order)
	if err != nil {
		return
	}
	order.ID = orderID

	err = s.userRepo.ClearCart(ctx, user.ID)
	if err != nil {
		return
	}

	s.publishOrderPlaced(ctx, order)
	s.sendOrderConfirmation(ctx, order, user.Email)

	respPayload.ID = orderID.Hex()
	respPayload.OrderNumber = order.OrderNumber
	respPayload.TotalPrice = order.TotalPrice
	respPayload.ExpectedDelivery = order.ExpectedDelivery
	respPayload.Status = order.Status

	return respPayload, nil
}

func (s *OrderServiceImpl) GetUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errs.ErrNotFound
	}

	return s.orderRepo.GetOrdersByUser(ctx, id)
}

func (s *OrderServiceImpl) GetSellerOrders(ctx context.Context, sellerID string) ([]domain.Order, error) {
	id, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, errs.ErrNotFound
	}

	return s.orderRepo.GetOrdersBySeller(ctx, id)
}

func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, sellerID string, orderID string, status string) (order domain.Order, err error) {
	if !domain.IsValidOrderStatus(status) {
		return order, errs.ErrInvalidOrderStatus
	}

	order, err = s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	if order.Seller.Hex() != sellerID {
		return domain.Order{}, errs.ErrUnauthorized
	}

	err = s.orderRepo.UpdateOrderStatus(ctx, order.ID, status)
	if err != nil {
		return domain.Order{}, err
	}

	order.Status = status
	return order, nil
}

// publishOrderPlaced is best-effort; a broker outage never fails a placed order.
func (s *OrderServiceImpl) publishOrderPlaced(ctx context.Context, order domain.Order) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: "order_placed",
		Data: dto.OrderPlacedEvent{
			OrderNumber:      order.OrderNumber,
			SellerID:         order.Seller.Hex(),
			TotalPrice:       order.TotalPrice,
			ExpectedDelivery: order.ExpectedDelivery,
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishOrderPlaced").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.writeKafkaMessage(jsonMsg)
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishOrderPlaced").Msgf("attempt %d/%d", i+1, maxRetries)
		time.Sleep(time.Second * time.Duration(i+1))
	}
}

func (s *OrderServiceImpl) writeKafkaMessage(msg []byte) error {
	s.kafkaProducer.SetWriteDeadline(time.Now().Add(10 * time.Second))
	_, err := s.kafkaProducer.WriteMessages(kafka.Message{Value: msg})
	return err
}

func (s *OrderServiceImpl) sendOrderConfirmation(ctx context.Context, order domain.Order, email string) {
	if s.config.SMTPConfig.Host == "" || email == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPConfig.Sender)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Order %s placed", order.OrderNumber))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour order %s has been placed. Total: %.2f. Expected delivery: %s.\n",
		order.UserName, order.OrderNumber, order.TotalPrice,
		order.ExpectedDelivery.Format("02 January 2006"),
	))

	_, err := s.emailBreaker.Execute(func() (any, error) {
		return nil, utils.SendEmail(m, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port)
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "sendOrderConfirmation").Msg("")
	}
}
