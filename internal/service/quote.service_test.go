package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"investease/internal/db/models/postgres/public/model"
	mock_repository "investease/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_RefreshQuotes(t *testing.T) {
	t.Run("fetches each requested symbol and upserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketQuoteRepository := mock_repository.NewMockMarketQuoteRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		quoteFeedRepository := mock_repository.NewMockQuoteFeedRepository(ctrl)

		handler := quoteServiceHandler{
			MarketQuoteRepository: marketQuoteRepository,
			HoldingRepository:     holdingRepository,
			QuoteFeedRepository:   quoteFeedRepository,
		}

		quoteFeedRepository.EXPECT().GetQuote("AAPL").Return(&model.MarketQuote{
			Symbol:    "AAPL",
			Price:     decimal.NewFromInt(180),
			UpdatedAt: time.Now().UTC(),
		}, nil)
		quoteFeedRepository.EXPECT().GetQuote("MSFT").Return(&model.MarketQuote{
			Symbol:    "MSFT",
			Price:     decimal.NewFromInt(310),
			UpdatedAt: time.Now().UTC(),
		}, nil)
		marketQuoteRepository.EXPECT().Upsert(gomock.Len(2)).Return(nil)

		result, err := handler.RefreshQuotes(context.Background(), []string{"AAPL", "MSFT"})
		require.NoError(t, err)
		require.Equal(t, 2, result.Updated)
		require.Equal(t, 0, result.Failed)
	})

	t.Run("a bad symbol does not block the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketQuoteRepository := mock_repository.NewMockMarketQuoteRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		quoteFeedRepository := mock_repository.NewMockQuoteFeedRepository(ctrl)

		handler := quoteServiceHandler{
			MarketQuoteRepository: marketQuoteRepository,
			HoldingRepository:     holdingRepository,
			QuoteFeedRepository:   quoteFeedRepository,
		}

		quoteFeedRepository.EXPECT().GetQuote("BOGUS").Return(nil, fmt.Errorf("no quote"))
		quoteFeedRepository.EXPECT().GetQuote("AAPL").Return(&model.MarketQuote{
			Symbol: "AAPL",
			Price:  decimal.NewFromInt(180),
		}, nil)
		marketQuoteRepository.EXPECT().Upsert(gomock.Len(1)).Return(nil)

		result, err := handler.RefreshQuotes(context.Background(), []string{"BOGUS", "AAPL"})
		require.NoError(t, err)
		require.Equal(t, 1, result.Updated)
		require.Equal(t, 1, result.Failed)
	})

	t.Run("all symbols failing is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketQuoteRepository := mock_repository.NewMockMarketQuoteRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		quoteFeedRepository := mock_repository.NewMockQuoteFeedRepository(ctrl)

		handler := quoteServiceHandler{
			MarketQuoteRepository: marketQuoteRepository,
			HoldingRepository:     holdingRepository,
			QuoteFeedRepository:   quoteFeedRepository,
		}

		quoteFeedRepository.EXPECT().GetQuote("BOGUS").Return(nil, fmt.Errorf("no quote"))
		marketQuoteRepository.EXPECT().Upsert(gomock.Len(0)).Return(nil)

		_, err := handler.RefreshQuotes(context.Background(), []string{"BOGUS"})
		require.Error(t, err)
	})

	t.Run("no symbols falls back to the held and quoted universe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketQuoteRepository := mock_repository.NewMockMarketQuoteRepository(ctrl)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		quoteFeedRepository := mock_repository.NewMockQuoteFeedRepository(ctrl)

		handler := quoteServiceHandler{
			MarketQuoteRepository: marketQuoteRepository,
			HoldingRepository:     holdingRepository,
			QuoteFeedRepository:   quoteFeedRepository,
		}

		holdingRepository.EXPECT().ListHeldSymbols().Return([]string{"AAPL", "MSFT"}, nil)
		marketQuoteRepository.EXPECT().ListSymbols().Return([]string{"MSFT", "TSLA"}, nil)
		for _, symbol := range []string{"AAPL", "MSFT", "TSLA"} {
			quoteFeedRepository.EXPECT().GetQuote(symbol).Return(&model.MarketQuote{
				Symbol: symbol,
				Price:  decimal.NewFromInt(100),
			}, nil)
		}
		marketQuoteRepository.EXPECT().Upsert(gomock.Len(3)).Return(nil)

		result, err := handler.RefreshQuotes(context.Background(), nil)
		require.NoError(t, err)
		require.Equal(t, 3, result.Updated)
	})
}
