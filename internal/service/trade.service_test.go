package service

import (
	"database/sql"
	"testing"

	"investease/internal/db/models/postgres/public/model"
	"investease/internal/domain"
	mock_repository "investease/internal/repository/mocks"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_executeBuy(t *testing.T) {
	userID := uuid.New()
	portfolioID := uuid.New()
	var tx *sql.Tx

	t.Run("first buy opens a holding and debits cash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := tradeServiceHandler{
			PortfolioRepository:   portfolioRepository,
			HoldingRepository:     holdingRepository,
			TransactionRepository: transactionRepository,
		}

		portfolioRepository.EXPECT().GetForUpdate(tx, userID).Return(&model.Portfolio{
			PortfolioID: portfolioID,
			UserID:      userID,
			Cash:        decimal.NewFromInt(10000),
		}, nil)
		holdingRepository.EXPECT().Get(tx, userID, "AAPL").Return(nil, nil)
		holdingRepository.EXPECT().Add(tx, gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, holding model.Holding) (*model.Holding, error) {
				require.Equal(t, "AAPL", holding.Symbol)
				require.Equal(t, "10", holding.Quantity.String())
				require.Equal(t, "150", holding.AveragePrice.String())
				return &holding, nil
			},
		)
		portfolioRepository.EXPECT().Update(tx, portfolioID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, _ uuid.UUID, p model.Portfolio, _ interface{}) (*model.Portfolio, error) {
				require.Equal(t, "8500", p.Cash.String())
				return &p, nil
			},
		)
		transactionRepository.EXPECT().Add(tx, gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, transaction model.Transaction) (*model.Transaction, error) {
				require.Equal(t, model.TradeSide_Buy, transaction.Side)
				require.Equal(t, "1500", transaction.TotalAmount.String())
				require.Nil(t, transaction.ProfitLoss)
				return &transaction, nil
			},
		)

		transaction, err := handler.executeBuy(tx, TradeInput{
			UserID:   userID,
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(150),
		})
		require.NoError(t, err)
		require.Equal(t, "AAPL", transaction.Symbol)
	})

	t.Run("repeat buy re-averages the cost basis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := tradeServiceHandler{
			PortfolioRepository:   portfolioRepository,
			HoldingRepository:     holdingRepository,
			TransactionRepository: transactionRepository,
		}

		holdingID := uuid.New()
		portfolioRepository.EXPECT().GetForUpdate(tx, userID).Return(&model.Portfolio{
			PortfolioID: portfolioID,
			UserID:      userID,
			Cash:        decimal.NewFromInt(5000),
		}, nil)
		holdingRepository.EXPECT().Get(tx, userID, "AAPL").Return(&model.Holding{
			HoldingID:    holdingID,
			UserID:       userID,
			Symbol:       "AAPL",
			Quantity:     decimal.NewFromInt(10),
			AveragePrice: decimal.NewFromInt(100),
		}, nil)
		holdingRepository.EXPECT().Update(tx, holdingID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, _ uuid.UUID, holding model.Holding, _ interface{}) (*model.Holding, error) {
				// 10@100 + 10@200 averages out at 150
				require.Equal(t, "20", holding.Quantity.String())
				require.Equal(t, "150", holding.AveragePrice.String())
				return &holding, nil
			},
		)
		portfolioRepository.EXPECT().Update(tx, portfolioID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, _ uuid.UUID, p model.Portfolio, _ interface{}) (*model.Portfolio, error) {
				require.Equal(t, "3000", p.Cash.String())
				return &p, nil
			},
		)
		transactionRepository.EXPECT().Add(tx, gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, transaction model.Transaction) (*model.Transaction, error) {
				return &transaction, nil
			},
		)

		_, err := handler.executeBuy(tx, TradeInput{
			UserID:   userID,
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(200),
		})
		require.NoError(t, err)
	})

	t.Run("buy above available cash writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := tradeServiceHandler{
			PortfolioRepository:   portfolioRepository,
			HoldingRepository:     holdingRepository,
			TransactionRepository: transactionRepository,
		}

		portfolioRepository.EXPECT().GetForUpdate(tx, userID).Return(&model.Portfolio{
			PortfolioID: portfolioID,
			UserID:      userID,
			Cash:        decimal.NewFromInt(100),
		}, nil)

		_, err := handler.executeBuy(tx, TradeInput{
			UserID:   userID,
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(150),
		})
		require.ErrorAs(t, err, &domain.ErrInsufficientFunds{})
	})
}

func Test_executeSell(t *testing.T) {
	userID := uuid.New()
	portfolioID := uuid.New()
	var tx *sql.Tx

	t.Run("partial sell realizes profit and keeps the basis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := tradeServiceHandler{
			PortfolioRepository:   portfolioRepository,
			HoldingRepository:     holdingRepository,
			TransactionRepository: transactionRepository,
		}

		holdingID := uuid.New()
		portfolioRepository.EXPECT().GetForUpdate(tx, userID).Return(&model.Portfolio{
			PortfolioID: portfolioID,
			UserID:      userID,
			Cash:        decimal.NewFromInt(1000),
		}, nil)
		holdingRepository.EXPECT().Get(tx, userID, "AAPL").Return(&model.Holding{
			HoldingID:    holdingID,
			UserID:       userID,
			Symbol:       "AAPL",
			Quantity:     decimal.NewFromInt(20),
			AveragePrice: decimal.NewFromInt(150),
		}, nil)
		holdingRepository.EXPECT().Update(tx, holdingID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, _ uuid.UUID, holding model.Holding, _ interface{}) (*model.Holding, error) {
				require.Equal(t, "10", holding.Quantity.String())
				// average price of the remaining shares is untouched
				require.Equal(t, "150", holding.AveragePrice.String())
				return &holding, nil
			},
		)
		portfolioRepository.EXPECT().Update(tx, portfolioID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, _ uuid.UUID, p model.Portfolio, _ interface{}) (*model.Portfolio, error) {
				require.Equal(t, "2700", p.Cash.String())
				return &p, nil
			},
		)
		transactionRepository.EXPECT().Add(tx, gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, transaction model.Transaction) (*model.Transaction, error) {
				require.Equal(t, model.TradeSide_Sell, transaction.Side)
				require.NotNil(t, transaction.ProfitLoss)
				// (170 - 150) * 10
				require.Equal(t, "200", transaction.ProfitLoss.String())
				return &transaction, nil
			},
		)

		_, err := handler.executeSell(tx, TradeInput{
			UserID:   userID,
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(170),
		})
		require.NoError(t, err)
	})

	t.Run("selling the full position deletes the holding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := tradeServiceHandler{
			PortfolioRepository:   portfolioRepository,
			HoldingRepository:     holdingRepository,
			TransactionRepository: transactionRepository,
		}

		holdingID := uuid.New()
		portfolioRepository.EXPECT().GetForUpdate(tx, userID).Return(&model.Portfolio{
			PortfolioID: portfolioID,
			UserID:      userID,
			Cash:        decimal.NewFromInt(8500),
		}, nil)
		holdingRepository.EXPECT().Get(tx, userID, "AAPL").Return(&model.Holding{
			HoldingID:    holdingID,
			UserID:       userID,
			Symbol:       "AAPL",
			Quantity:     decimal.NewFromInt(10),
			AveragePrice: decimal.NewFromInt(150),
		}, nil)
		holdingRepository.EXPECT().Delete(tx, holdingID).Return(nil)
		portfolioRepository.EXPECT().Update(tx, portfolioID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, _ uuid.UUID, p model.Portfolio, _ interface{}) (*model.Portfolio, error) {
				// started with 10000, bought 10@150, sold 10@180
				require.Equal(t, "10300", p.Cash.String())
				return &p, nil
			},
		)
		transactionRepository.EXPECT().Add(tx, gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, transaction model.Transaction) (*model.Transaction, error) {
				require.Equal(t, "300", transaction.ProfitLoss.String())
				return &transaction, nil
			},
		)

		_, err := handler.executeSell(tx, TradeInput{
			UserID:   userID,
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(180),
		})
		require.NoError(t, err)
	})

	t.Run("selling an unheld symbol writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := tradeServiceHandler{
			PortfolioRepository:   portfolioRepository,
			HoldingRepository:     holdingRepository,
			TransactionRepository: transactionRepository,
		}

		portfolioRepository.EXPECT().GetForUpdate(tx, userID).Return(&model.Portfolio{
			PortfolioID: portfolioID,
			UserID:      userID,
			Cash:        decimal.NewFromInt(1000),
		}, nil)
		holdingRepository.EXPECT().Get(tx, userID, "TSLA").Return(nil, nil)

		_, err := handler.executeSell(tx, TradeInput{
			UserID:   userID,
			Symbol:   "TSLA",
			Quantity: decimal.NewFromInt(1),
			Price:    decimal.NewFromInt(250),
		})
		require.ErrorAs(t, err, &domain.ErrNoPosition{})
	})

	t.Run("overselling is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := tradeServiceHandler{
			PortfolioRepository:   portfolioRepository,
			HoldingRepository:     holdingRepository,
			TransactionRepository: transactionRepository,
		}

		portfolioRepository.EXPECT().GetForUpdate(tx, userID).Return(&model.Portfolio{
			PortfolioID: portfolioID,
			UserID:      userID,
			Cash:        decimal.NewFromInt(1000),
		}, nil)
		holdingRepository.EXPECT().Get(tx, userID, "AAPL").Return(&model.Holding{
			HoldingID:    uuid.New(),
			UserID:       userID,
			Symbol:       "AAPL",
			Quantity:     decimal.NewFromInt(5),
			AveragePrice: decimal.NewFromInt(150),
		}, nil)

		_, err := handler.executeSell(tx, TradeInput{
			UserID:   userID,
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(6),
			Price:    decimal.NewFromInt(150),
		})
		require.ErrorAs(t, err, &domain.ErrInsufficientShares{})
	})
}

func Test_validateOrder(t *testing.T) {
	valid := TradeInput{
		UserID:   uuid.New(),
		Symbol:   "AAPL",
		Quantity: decimal.NewFromInt(1),
		Price:    decimal.NewFromInt(100),
	}
	require.NoError(t, validateOrder(valid))

	missingSymbol := valid
	missingSymbol.Symbol = ""
	require.ErrorAs(t, validateOrder(missingSymbol), &domain.ErrInvalidOrder{})

	zeroQuantity := valid
	zeroQuantity.Quantity = decimal.Zero
	require.ErrorAs(t, validateOrder(zeroQuantity), &domain.ErrInvalidOrder{})

	negativePrice := valid
	negativePrice.Price = decimal.NewFromInt(-1)
	require.ErrorAs(t, validateOrder(negativePrice), &domain.ErrInvalidOrder{})
}
