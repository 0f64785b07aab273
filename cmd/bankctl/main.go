package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/SyedMohamedHyder/BankAccount/internal/config"
	"github.com/SyedMohamedHyder/BankAccount/internal/domain"
	"github.com/SyedMohamedHyder/BankAccount/internal/logging"
	"github.com/SyedMohamedHyder/BankAccount/internal/usecase/statement"
)

var (
	number   = flag.String("number", "", "account number (default: random UUID)")
	first    = flag.String("first", "John", "owner first name")
	last     = flag.String("last", "Green", "owner last name")
	open     = flag.String("open", "0", "opening balance")
	deposit  = flag.String("deposit", "", "amount to deposit")
	withdraw = flag.String("withdraw", "", "amount to withdraw")
	interest = flag.Bool("interest", false, "apply one interest payment")
	parse    = flag.String("parse", "", "decode a confirmation code and exit")
)

func main() {
	flag.Parse()

	// 1. Load configuration from the environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize logger
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Decode-only mode needs no account at all
	if *parse != "" {
		conf, err := domain.ParseConfirmationCode(*parse)
		if err != nil {
			log.Fatalf("Failed to parse confirmation code: %v", err)
		}
		fmt.Printf("kind=%s account=%s time=%s sequence=%d\n",
			conf.Kind, conf.AccountNumber, conf.Timestamp, conf.Sequence)
		return
	}

	// 3. Build the shared interest policy and account timezone
	rate, err := cfg.Rate()
	if err != nil {
		log.Fatalf("Invalid interest rate: %v", err)
	}
	policy, err := domain.NewInterestPolicy(rate)
	if err != nil {
		log.Fatalf("Invalid interest rate: %v", err)
	}
	tz, err := cfg.TimeZone()
	if err != nil {
		log.Fatalf("Invalid timezone: %v", err)
	}

	// 4. Open the account
	acctNumber := *number
	if acctNumber == "" {
		acctNumber = uuid.NewString()
	}
	opening, err := decimal.NewFromString(*open)
	if err != nil {
		log.Fatalf("Invalid opening balance: %v", err)
	}

	acct, err := domain.NewAccount(acctNumber, *first, *last,
		domain.WithTimeZone(tz),
		domain.WithBalance(opening),
		domain.WithInterestPolicy(policy),
	)
	if err != nil {
		log.Fatalf("Failed to open account: %v", err)
	}
	logger.Info("account opened",
		zap.String("number", acct.Number()),
		zap.String("owner", acct.FullName()),
		zap.String("balance", acct.Balance().String()),
	)

	// 5. Run the requested operations
	if err := run(acct, logger); err != nil {
		logger.Error("operation failed", zap.Error(err))
		os.Exit(1)
	}

	// 6. Print the statement
	svc := statement.NewStatementService(logger)
	fmt.Print(svc.Format(svc.Render(acct)))
}

// run executes the deposit/withdraw/interest operations selected by flags.
func run(acct *domain.Account, logger *zap.Logger) error {
	if *deposit != "" {
		amount, err := decimal.NewFromString(*deposit)
		if err != nil {
			return fmt.Errorf("invalid deposit amount: %w", err)
		}
		conf, err := acct.Deposit(amount)
		if err != nil {
			return err
		}
		logger.Info("deposit confirmed", zap.String("code", conf.Code()))
	}

	if *withdraw != "" {
		amount, err := decimal.NewFromString(*withdraw)
		if err != nil {
			return fmt.Errorf("invalid withdrawal amount: %w", err)
		}
		conf, err := acct.Withdraw(amount)
		if err != nil {
			var insufficient *domain.InsufficientFundsError
			if errors.As(err, &insufficient) {
				logger.Warn("withdrawal declined",
					zap.String("code", insufficient.Declined.Code()),
					zap.String("balance", acct.Balance().String()),
				)
				return nil
			}
			return err
		}
		logger.Info("withdrawal confirmed", zap.String("code", conf.Code()))
	}

	if *interest {
		conf := acct.PayInterest()
		logger.Info("interest paid",
			zap.String("code", conf.Code()),
			zap.String("rate", acct.Interest().Rate().String()),
		)
	}

	return nil
}
