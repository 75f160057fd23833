package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/druvus/vocabulator/internal/client"
	"github.com/druvus/vocabulator/internal/config"
	"github.com/druvus/vocabulator/internal/models"
	"github.com/druvus/vocabulator/internal/repository"
	"github.com/druvus/vocabulator/internal/service"
	"github.com/druvus/vocabulator/internal/storage/cache"
	"github.com/druvus/vocabulator/internal/storage/db"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)
	clients := client.InitClients()
	services := service.InitServices(clients, repos, service.Options{
		MainLanguage:     cfg.App.MainLanguage,
		NumChoices:       cfg.Quiz.NumChoices,
		ProblemThreshold: cfg.Quiz.ProblemThreshold,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	if err := services.EnsureDefaultLanguages(ctx); err != nil {
		cancel()
		logger.Fatal("failed to seed languages", zap.Error(err))
	}
	cancel()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "sets":
		err = runSets(services, cfg)
	case "import":
		err = runImport(services, cfg, os.Args[2:])
	case "quiz":
		err = runQuiz(services, cache.NewCache(), os.Args[2:])
	case "stats":
		err = runStats(services, cfg, os.Args[2:])
	case "export":
		err = runExport(services, cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal("command failed", zap.String("command", os.Args[1]), zap.Error(err))
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: vocabulator <command> [flags]

commands:
  sets     list vocabulary sets
  import   import vocabulary from a delimited text file
  quiz     run an interactive quiz session
  stats    show statistics and problem words for a set
  export   export a set to csv or xlsx`)
}

func runSets(services *service.Service, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()

	sets, err := services.Sets(ctx)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		fmt.Println("no sets yet, use the import command first")
		return nil
	}
	for _, set := range sets {
		tags, err := services.SetTags(ctx, set.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%s", set.ID, set.Name)
		if len(tags) > 0 {
			fmt.Printf("\t[%s]", strings.Join(tags, ", "))
		}
		fmt.Println()
	}
	return nil
}

func runImport(services *service.Service, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	name := fs.String("name", "", "name for a new set")
	setID := fs.Int64("into", 0, "import into an existing set id instead")
	file := fs.String("file", "", "input file, - for stdin")
	languages := fs.String("languages", "", "comma separated column languages, e.g. swedish,english")
	tags := fs.String("tags", "", "comma separated tags for a new set")
	translate := fs.Bool("translate", false, "auto-translate missing main language words")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" && *setID == 0 {
		return errors.New("either -name or -into is required")
	}

	var (
		text []byte
		err  error
	)
	if *file == "" || *file == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(*file)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()

	res, err := services.ImportText(ctx, service.ImportParams{
		SetName:        *name,
		SetID:          *setID,
		Text:           string(text),
		LanguagesOrder: splitList(*languages),
		Tags:           splitList(*tags),
		AutoTranslate:  *translate,
	})
	if err != nil {
		return err
	}

	fmt.Printf("imported %d groups into set %d", res.Groups, res.SetID)
	if res.Skipped > 0 {
		fmt.Printf(" (%d rows skipped)", res.Skipped)
	}
	fmt.Println()
	return nil
}

func runQuiz(services *service.Service, sessions *cache.Cache, args []string) error {
	fs := flag.NewFlagSet("quiz", flag.ExitOnError)
	setID := fs.Int64("set", 0, "set id to quiz on")
	username := fs.String("user", "", "user to track progress for, empty for anonymous")
	mode := fs.String("mode", "typed", "quiz mode: typed, choice or flashcard")
	languages := fs.String("languages", "", "fixed direction as source,target language names")
	randomDir := fs.Bool("random-direction", false, "flip the fixed direction randomly per question")
	spaced := fs.Bool("spaced", false, "restrict to groups due for review")
	problems := fs.Bool("problems", false, "restrict to problematic groups")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *setID == 0 {
		return errors.New("-set is required")
	}

	ctx := context.Background()

	var userID int64
	if *username != "" {
		user, err := services.GetOrCreateUser(ctx, *username)
		if err != nil {
			return err
		}
		userID = user.ID
	}

	owner := *username
	if owner == "" {
		owner = "anonymous"
	}

	session, err := services.StartQuiz(ctx, service.SessionParams{
		SetID:            *setID,
		UserID:           userID,
		Languages:        splitList(*languages),
		RandomDirection:  *randomDir,
		Mode:             models.Mode(*mode),
		SpacedRepetition: *spaced,
		ProblemOnly:      *problems,
	})
	if err != nil {
		if errors.Is(err, service.ErrNoEligibleGroups) {
			fmt.Println("nothing to review right now")
			return nil
		}
		return err
	}

	sessions.SetSession(owner, session)
	defer sessions.DeleteSession(owner)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		session, ok := sessions.GetSession(owner)
		if !ok || session.State() != service.StateQuestionPresented {
			break
		}
		question := session.Current()
		printQuestion(question, models.Mode(*mode))

		if !scanner.Scan() {
			fmt.Println("\nquiz aborted, nothing saved")
			return scanner.Err()
		}
		input := resolveInput(scanner.Text(), question, models.Mode(*mode))

		result, err := session.Answer(ctx, input)
		if err != nil {
			return err
		}
		if result.Correct {
			fmt.Println("correct!")
		} else {
			fmt.Printf("wrong, the answer is %q\n", result.CorrectAnswer)
		}
		if result.Finished {
			fmt.Printf("\ndone: %d/%d correct\n", result.Score, result.Total)
		}
	}
	return nil
}

func printQuestion(q *models.Question, mode models.Mode) {
	fmt.Printf("\n%s (%s -> %s)\n", q.SourceWord, q.SourceLanguage, q.TargetLanguage)
	switch mode {
	case models.ModeChoice:
		for i, choice := range q.Choices {
			fmt.Printf("  %d) %s\n", i+1, choice)
		}
		fmt.Print("pick a number: ")
	case models.ModeFlashcard:
		fmt.Printf("answer: %s\ndid you know it? (yes/no): ", q.TargetWord)
	default:
		fmt.Print("your answer: ")
	}
}

// resolveInput maps a typed option number back to the choice text so
// grading always compares words.
func resolveInput(input string, q *models.Question, mode models.Mode) string {
	input = strings.TrimSpace(input)
	if mode != models.ModeChoice {
		return input
	}
	for i, choice := range q.Choices {
		if input == fmt.Sprintf("%d", i+1) {
			return choice
		}
	}
	return input
}

func runStats(services *service.Service, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	setID := fs.Int64("set", 0, "set id")
	username := fs.String("user", "", "restrict to one user's history")
	days := fs.Int("days", 0, "only count sessions from the last N days")
	threshold := fs.Float64("threshold", 0, "problem ratio threshold, 0 for the configured default")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *setID == 0 {
		return errors.New("-set is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()

	filter := models.StatsFilter{
		SetID:     *setID,
		SinceDays: *days,
		Threshold: *threshold,
	}
	if *username != "" {
		user, err := services.GetOrCreateUser(ctx, *username)
		if err != nil {
			return err
		}
		filter.UserID = user.ID
	}

	stats, err := services.SetStats(ctx, filter)
	if err != nil {
		return err
	}
	fmt.Printf("sessions: %d\n", stats.TotalSessions)
	fmt.Printf("avg correct per session: %.1f\n", stats.AvgCorrect)
	fmt.Printf("avg correctness ratio: %.0f%%\n", stats.AvgRatio*100)

	problems, err := services.ProblematicGroups(ctx, filter)
	if err != nil {
		return err
	}
	if len(problems) == 0 {
		fmt.Println("no problem words")
		return nil
	}

	fmt.Println("\nproblem words:")
	for _, groupID := range problems {
		words, err := services.Words(ctx, groupID)
		if err != nil {
			return err
		}
		parts := make([]string, 0, len(words))
		for lang, word := range words {
			parts = append(parts, fmt.Sprintf("%s: %s", lang, word))
		}
		fmt.Printf("  %s\n", strings.Join(parts, ", "))
	}
	return nil
}

func runExport(services *service.Service, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	setID := fs.Int64("set", 0, "set id")
	format := fs.String("format", "csv", "output format: csv or xlsx")
	out := fs.String("out", "", "output file, - for stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *setID == 0 {
		return errors.New("-set is required")
	}

	var w io.Writer = os.Stdout
	if *out != "" && *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()

	switch *format {
	case "csv":
		return services.ExportCSV(ctx, *setID, w)
	case "xlsx":
		return services.ExportXLSX(ctx, *setID, w)
	default:
		return fmt.Errorf("unknown export format %q", *format)
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
