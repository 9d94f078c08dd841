package fulfillment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// DefaultTimeout acota cuánto puede vivir la transacción de surtido (y por tanto
// cuánto retiene el bloqueo de fila de la orden) si el store se atasca.
const DefaultTimeout = 10 * time.Second

// Input entrada del flujo de surtido, ya parseada por la capa HTTP.
type Input struct {
	ProductID   int
	WarehouseID int
	Amount      int
	CreatedAt   time.Time
}

// UseCase orquesta el surtido de una orden: valida la entrada, abre una transacción
// vía TxRunner y corre Validator y Executor sobre los mismos repos atados a la tx.
// Cualquier fallo en cualquier punto termina en Rollback; no hay reintentos (esa
// decisión es del caller).
type UseCase struct {
	txRunner TxRunner
	timeout  time.Duration
}

// NewUseCase construye el caso de uso. timeout <= 0 usa DefaultTimeout.
func NewUseCase(txRunner TxRunner, timeout time.Duration) *UseCase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &UseCase{txRunner: txRunner, timeout: timeout}
}

// Fulfill ejecuta el flujo completo y devuelve el id del registro creado en
// product_warehouse. Amount <= 0 se rechaza antes de tocar el store: no se abre
// ninguna transacción.
func (uc *UseCase) Fulfill(ctx context.Context, in Input) (int, error) {
	if in.Amount <= 0 {
		return 0, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	// ID de correlación por intento, como el transaction_id de los movimientos.
	attemptID := uuid.New().String()

	var recordID int
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		fulfillmentRepo repository.FulfillmentRepository,
	) error {
		validator := NewValidator(productRepo, warehouseRepo, orderRepo, fulfillmentRepo)
		orderID, err := validator.Validate(ctx, in)
		if err != nil {
			return err
		}

		executor := NewExecutor(productRepo, orderRepo, fulfillmentRepo)
		recordID, err = executor.Execute(ctx, orderID, in)
		return err
	})
	if err != nil {
		log.Debug().
			Str("attempt_id", attemptID).
			Int("id_product", in.ProductID).
			Int("id_warehouse", in.WarehouseID).
			Int("amount", in.Amount).
			Err(err).
			Msg("surtido rechazado")
		return 0, err
	}

	log.Info().
		Str("attempt_id", attemptID).
		Int("id_product", in.ProductID).
		Int("id_warehouse", in.WarehouseID).
		Int("amount", in.Amount).
		Int("id_product_warehouse", recordID).
		Msg("orden surtida")
	return recordID, nil
}
