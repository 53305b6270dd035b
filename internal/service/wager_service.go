package service

import (
	"context"
	"fmt"
	"time"

	"casino-wagering-engine/config"
	"casino-wagering-engine/internal/core/domain"
	"casino-wagering-engine/internal/core/ports"
	"casino-wagering-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// payoutCreditAttempts bounds the settlement retries before a bet fails
// over to the compensating refund.
const payoutCreditAttempts = 3

// WagerServiceImpl orchestrates the bet lifecycle: validate, reserve
// stake, resolve outcome, settle payout. Any failure after the stake is
// reserved triggers a compensating refund; a wallet is never left
// debited without a matching credit.
type WagerServiceImpl struct {
	ledger       ports.LedgerService
	fairness     ports.FairnessService
	resolver     ports.OutcomeResolver
	betRepo      ports.BetRepository
	jackpot      ports.JackpotStore
	bonus        ports.BonusSpinStore
	slotEval     *SlotEvaluator
	rouletteEval *RouletteEvaluator
	game         config.GameConfig
	log          zerolog.Logger
}

// NewWagerService creates a new WagerServiceImpl.
func NewWagerService(
	ledger ports.LedgerService,
	fairness ports.FairnessService,
	resolver ports.OutcomeResolver,
	betRepo ports.BetRepository,
	jackpot ports.JackpotStore,
	bonus ports.BonusSpinStore,
	game config.GameConfig,
	log zerolog.Logger,
) *WagerServiceImpl {
	return &WagerServiceImpl{
		ledger:       ledger,
		fairness:     fairness,
		resolver:     resolver,
		betRepo:      betRepo,
		jackpot:      jackpot,
		bonus:        bonus,
		slotEval:     NewSlotEvaluator(game.ScatterTrigger, game.FreeSpinsAward),
		rouletteEval: NewRouletteEvaluator(),
		game:         game,
		log:          log,
	}
}

// PlaceBet runs one full wager. Validation failures reject the bet with
// no money movement and no persisted record.
func (s *WagerServiceImpl) PlaceBet(ctx context.Context, req domain.BetRequest) (*domain.ResolvedBet, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	totalStake := req.TotalStake()
	betID := uuid.New()

	// A slot spin may be funded by an earned free spin instead of the
	// wallet. The zero-amount adjustment keeps the audit trail complete.
	freeSpin := false
	if req.Game == domain.GameTypeSlot {
		ok, remaining, err := s.bonus.Consume(ctx, req.WalletID)
		if err != nil {
			s.log.Warn().Err(err).Str("wallet_id", req.WalletID.String()).Msg("bonus spin check failed, charging stake")
		} else if ok {
			freeSpin = true
			s.log.Info().
				Str("bet_id", betID.String()).
				Int("remaining", remaining).
				Msg("free spin consumed")
		}
	}

	var stakeTx *domain.Transaction
	var err error
	if freeSpin {
		stakeTx, err = s.ledger.Adjust(ctx, req.WalletID, 0, "free spin", &betID)
		if err != nil {
			// The spin was consumed but nothing was charged; hand it back.
			if _, aerr := s.bonus.Add(ctx, req.WalletID, 1); aerr != nil {
				s.log.Error().Err(aerr).Str("bet_id", betID.String()).Msg("failed to restore consumed free spin")
			}
			return nil, err
		}
	} else {
		stakeTx, err = s.ledger.Debit(ctx, req.WalletID, totalStake, stakeReason(req.Game), &betID)
		if err != nil {
			return nil, err
		}
	}

	bet := &domain.ResolvedBet{
		ID:         betID,
		WalletID:   req.WalletID,
		Game:       req.Game,
		State:      domain.BetStateStakeReserved,
		TotalStake: totalStake,
		StakeTxID:  &stakeTx.ID,
		CreatedAt:  time.Now().UTC(),
	}
	if freeSpin {
		bet.TotalStake = 0
	}
	if err := s.betRepo.Create(ctx, bet); err != nil {
		return nil, s.fail(ctx, bet, freeSpin, apperror.ErrStorage(fmt.Errorf("create bet: %w", err)))
	}

	if req.Game == domain.GameTypeSlot && !freeSpin && s.game.JackpotContribPermil > 0 {
		contribution := totalStake * s.game.JackpotContribPermil / 1000
		if contribution > 0 {
			if pool, jerr := s.jackpot.Contribute(ctx, contribution); jerr != nil {
				s.log.Warn().Err(jerr).Msg("jackpot contribution failed")
			} else {
				s.log.Debug().Int64("pool", pool).Int64("contribution", contribution).Msg("jackpot fed")
			}
		}
	}

	pair, err := s.fairness.ServerSeedFor(ctx, req.PlayerID, req.SeedPairID)
	if err != nil {
		return nil, s.fail(ctx, bet, freeSpin, err)
	}
	nonce, err := s.fairness.NextNonce(ctx, req.SeedPairID)
	if err != nil {
		return nil, s.fail(ctx, bet, freeSpin, err)
	}
	bet.Proof = domain.FairnessProof{
		SeedPairID:     pair.ID,
		ServerSeedHash: pair.ServerSeedHash,
		ClientSeed:     pair.ClientSeed,
		Nonce:          nonce,
	}

	var payout int64
	var jackpotWon int64
	switch req.Game {
	case domain.GameTypeSlot:
		grid, rerr := s.resolver.SlotGrid(pair.ServerSeed, pair.ClientSeed, nonce)
		if rerr != nil {
			return nil, s.fail(ctx, bet, freeSpin, apperror.ErrResolverFault(rerr))
		}
		outcome := s.slotEval.Evaluate(grid, req.Slot.StakePerLine, req.Slot.ActiveLines, req.Slot.ActiveMultiplier)
		bet.Slot = outcome
		if outcome.BonusSpinsAwarded > 0 {
			bet.BonusSpinsAwarded = outcome.BonusSpinsAwarded
			if _, berr := s.bonus.Add(ctx, req.WalletID, outcome.BonusSpinsAwarded); berr != nil {
				s.log.Error().Err(berr).Str("bet_id", bet.ID.String()).Msg("failed to persist awarded bonus spins")
			}
		}
		// Only paid spins can win the progressive pool; the roll rides
		// on the same proof as the grid.
		if !freeSpin && s.game.JackpotWinOdds > 0 {
			roll, rerr := s.resolver.JackpotRoll(pair.ServerSeed, pair.ClientSeed, nonce, s.game.JackpotWinOdds)
			if rerr != nil {
				return nil, s.fail(ctx, bet, freeSpin, apperror.ErrResolverFault(rerr))
			}
			if roll == 0 {
				if pool, jerr := s.jackpot.Reset(ctx); jerr != nil {
					s.log.Error().Err(jerr).Str("bet_id", bet.ID.String()).Msg("jackpot hit but pool drain failed")
				} else if pool > 0 {
					jackpotWon = pool
					outcome.JackpotWon = pool
					outcome.TotalPayout += pool
					s.log.Info().
						Str("bet_id", bet.ID.String()).
						Str("wallet_id", req.WalletID.String()).
						Int64("pool", pool).
						Msg("progressive jackpot won")
				}
			}
		}
		payout = outcome.TotalPayout
	case domain.GameTypeRoulette:
		pocket, rerr := s.resolver.RoulettePocket(pair.ServerSeed, pair.ClientSeed, nonce)
		if rerr != nil {
			return nil, s.fail(ctx, bet, freeSpin, apperror.ErrResolverFault(rerr))
		}
		outcome := s.rouletteEval.Evaluate(pocket, req.Roulette)
		bet.Roulette = outcome
		payout = outcome.TotalPayout
	}
	bet.State = domain.BetStateOutcomeResolved

	// The credit is idempotent per key, so a retry after a timeout that
	// actually committed replays the recorded transaction instead of
	// paying twice. Only after the retries are exhausted does the bet
	// fail over to the compensating refund.
	creditKey := domain.BuildCreditIdempotencyKey(bet.ID)
	var payoutTx *domain.Transaction
	for attempt := 1; attempt <= payoutCreditAttempts; attempt++ {
		payoutTx, err = s.ledger.Credit(ctx, req.WalletID, payout, payoutReason(req.Game), &bet.ID, creditKey)
		if err == nil {
			break
		}
		s.log.Warn().
			Err(err).
			Int("attempt", attempt).
			Str("bet_id", bet.ID.String()).
			Msg("payout credit failed")
	}
	if err != nil {
		if jackpotWon > 0 {
			// The win never settled; the drained pool goes back.
			if _, jerr := s.jackpot.Contribute(ctx, jackpotWon); jerr != nil {
				s.log.Error().Err(jerr).Int64("amount", jackpotWon).Msg("failed to restore drained jackpot pool")
			}
		}
		return nil, s.fail(ctx, bet, freeSpin, err)
	}
	bet.TotalPayout = payout
	bet.PayoutTxID = &payoutTx.ID
	bet.State = domain.BetStatePayoutSettled

	now := time.Now().UTC()
	bet.SettledAt = &now
	bet.State = domain.BetStateCompleted
	if err := s.betRepo.Update(ctx, bet); err != nil {
		// Money already settled correctly; only the record is stale.
		s.log.Error().Err(err).Str("bet_id", bet.ID.String()).Msg("failed to persist completed bet")
	}

	s.log.Info().
		Str("bet_id", bet.ID.String()).
		Str("wallet_id", req.WalletID.String()).
		Str("game", string(req.Game)).
		Int64("stake", bet.TotalStake).
		Int64("payout", payout).
		Uint64("nonce", nonce).
		Msg("bet completed")

	return bet, nil
}

// GetBet returns one resolved bet.
func (s *WagerServiceImpl) GetBet(ctx context.Context, betID uuid.UUID) (*domain.ResolvedBet, error) {
	bet, err := s.betRepo.GetByID(ctx, betID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get bet: %w", err))
	}
	if bet == nil {
		return nil, apperror.ErrBetNotFound()
	}
	return bet, nil
}

// ListBets returns a wallet's bet history, newest first.
func (s *WagerServiceImpl) ListBets(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.ResolvedBet, int64, error) {
	bets, total, err := s.betRepo.ListByWallet(ctx, walletID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.ErrStorage(fmt.Errorf("list bets: %w", err))
	}
	return bets, total, nil
}

// fail marks the bet Failed and refunds the reserved stake so the player
// is never charged for a bet that did not settle. Free spins are handed
// back instead of money.
func (s *WagerServiceImpl) fail(ctx context.Context, bet *domain.ResolvedBet, freeSpin bool, cause error) error {
	if freeSpin {
		if _, err := s.bonus.Add(ctx, bet.WalletID, 1); err != nil {
			s.log.Error().Err(err).Str("bet_id", bet.ID.String()).Msg("failed to restore consumed free spin")
		}
	} else if bet.TotalStake > 0 {
		refundTx, err := s.ledger.Credit(ctx, bet.WalletID, bet.TotalStake, "stake refund", &bet.ID, domain.BuildRefundIdempotencyKey(bet.ID))
		if err != nil {
			s.log.Error().Err(err).Str("bet_id", bet.ID.String()).Int64("stake", bet.TotalStake).Msg("compensating refund failed")
		} else {
			bet.PayoutTxID = &refundTx.ID
		}
	}

	bet.State = domain.BetStateFailed
	if err := s.betRepo.Update(ctx, bet); err != nil {
		s.log.Error().Err(err).Str("bet_id", bet.ID.String()).Msg("failed to persist failed bet")
	}

	s.log.Warn().
		Err(cause).
		Str("bet_id", bet.ID.String()).
		Str("wallet_id", bet.WalletID.String()).
		Msg("bet failed and refunded")

	return cause
}

// validate checks the bet shape before any money moves.
func (s *WagerServiceImpl) validate(req *domain.BetRequest) error {
	switch req.Game {
	case domain.GameTypeSlot:
		if req.Slot == nil {
			return apperror.ErrInvalidBet("missing slot parameters")
		}
		if req.Roulette != nil {
			return apperror.ErrInvalidBet("slot bet cannot carry roulette selections")
		}
		if req.Slot.StakePerLine <= 0 {
			return apperror.ErrInvalidBet("stake per line must be positive")
		}
		if req.Slot.ActiveLines < 1 || req.Slot.ActiveLines > domain.MaxActiveLines {
			return apperror.ErrInvalidBet(fmt.Sprintf("active lines must be between 1 and %d", domain.MaxActiveLines))
		}
		if req.Slot.ActiveMultiplier < 1 {
			return apperror.ErrInvalidBet("multiplier must be at least 1")
		}
	case domain.GameTypeRoulette:
		if len(req.Roulette) == 0 {
			return apperror.ErrInvalidBet("no selections placed")
		}
		if req.Slot != nil {
			return apperror.ErrInvalidBet("roulette bet cannot carry slot parameters")
		}
		for i := range req.Roulette {
			if !req.Roulette[i].Valid() {
				return apperror.ErrInvalidBet(fmt.Sprintf("selection %d is malformed", i))
			}
		}
	default:
		return apperror.ErrInvalidBet(fmt.Sprintf("unknown game type %q", req.Game))
	}

	total := req.TotalStake()
	if total <= 0 {
		return apperror.ErrInvalidBet("total stake must be positive")
	}
	if total < s.game.MinStake {
		return apperror.ErrInvalidBet(fmt.Sprintf("total stake below minimum of %d", s.game.MinStake))
	}
	if total > s.game.MaxStake {
		return apperror.ErrInvalidBet(fmt.Sprintf("total stake above maximum of %d", s.game.MaxStake))
	}
	return nil
}

func stakeReason(game domain.GameType) string {
	if game == domain.GameTypeSlot {
		return "slot spin stake"
	}
	return "roulette spin stake"
}

func payoutReason(game domain.GameType) string {
	if game == domain.GameTypeSlot {
		return "slot spin payout"
	}
	return "roulette spin payout"
}
