package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pbanos/seedling"
	"github.com/pbanos/seedling/dataset"
	"github.com/spf13/cobra"
)

const decisionTreeLearner = "decision-tree"

type rootCmdConfig struct {
	logger
}

type validationMode string

const (
	randomValidation   validationMode = "random"
	trainingValidation validationMode = "training"
	crossValidation    validationMode = "cross"
)

type validation struct {
	mode    validationMode
	percent float64
	folds   int
}

type trainCmdConfig struct {
	*sourceCmdConfig
	validationInput string
	validation      validation
	prune           bool
	learner         string
	seed            int64
	depth           int
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootConfig := &rootCmdConfig{}
	config := &trainCmdConfig{sourceCmdConfig: &sourceCmdConfig{rootCmdConfig: rootConfig}}
	rootCmd := &cobra.Command{
		Use:   "seedling",
		Short: "seedling is a tool to grow and validate decision trees",
		Long:  `A tool to grow ID3 decision trees from your data and validate them with holdout, training set or k-fold cross-validation`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			d, err := config.Load()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			config.Logf("Read %d records with %d features to predict %s", d.Count(), d.Catalog.Len()-1, d.Catalog.Label().Name())
			dataset.Shuffle(d.Records, rand.New(rand.NewSource(config.Seed())))
			err = config.run(d)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar((*bool)(&rootConfig.logger), "verbose", false, "log progress to STDERR")
	addSourceFlags(rootCmd, config.sourceCmdConfig)
	rootCmd.Flags().StringVarP(&(config.validationInput), "validation", "v", "", "validation mode, the following are valid: random:[PERCENT], training, cross:[FOLDS] (required)")
	rootCmd.Flags().BoolVarP(&(config.prune), "prune", "p", false, "prune trees with reduced error pruning against 30% of their training records (random and cross validation only)")
	rootCmd.Flags().StringVarP(&(config.learner), "learner", "l", decisionTreeLearner, "learner to use, only decision-tree is available")
	rootCmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed to shuffle records with (defaults to 0: a time-based seed)")
	rootCmd.Flags().IntVar(&(config.depth), "depth", 0, "number of tree levels to print on training validation (defaults to 0: all levels)")
	rootCmd.AddCommand(versionCmd(), predictCmd(rootConfig))
	return rootCmd
}

func addSourceFlags(cmd *cobra.Command, config *sourceCmdConfig) {
	cmd.Flags().StringVarP(&(config.dataInput), "file", "f", "", "path to an ARFF (.arff), CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the records (required)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features of the records (required for all but ARFF files)")
	cmd.Flags().StringVarP(&(config.table), "table", "t", "", "table or collection holding the records (required for SQLite3 and PostgreSQL, defaults to samples for MongoDB)")
	cmd.Flags().StringVarP(&(config.classFeature), "class-feature", "c", "", "name of the feature to predict (defaults to the label in the metadata or its last feature)")
}

func (tcc *trainCmdConfig) Validate() error {
	err := tcc.sourceCmdConfig.Validate()
	if err != nil {
		return err
	}
	if tcc.learner != decisionTreeLearner {
		return fmt.Errorf("unknown learner %s", tcc.learner)
	}
	if tcc.depth < 0 {
		return fmt.Errorf("depth must not be negative")
	}
	tcc.validation, err = parseValidation(tcc.validationInput)
	return err
}

func (tcc *trainCmdConfig) Seed() int64 {
	if tcc.seed == 0 {
		tcc.seed = time.Now().UnixNano()
		tcc.Logf("Shuffling records with seed %d", tcc.seed)
	}
	return tcc.seed
}

func (tcc *trainCmdConfig) run(d *dataset.Dataset) error {
	opts := []seedling.Option{seedling.WithLogger(tcc.logger)}
	switch tcc.validation.mode {
	case randomValidation:
		e, err := seedling.Holdout(d.Records, d.Catalog, tcc.validation.percent, tcc.prune, opts...)
		if err != nil {
			return fmt.Errorf("holdout validation: %v", err)
		}
		fmt.Printf("test accuracy: %v\n", e.Accuracy)
	case trainingValidation:
		if tcc.prune {
			tcc.Logf("Ignoring prune flag: training validation has no records to prune with")
		}
		t, err := seedling.New(d.Catalog, opts...).Grow(d.Records)
		if err != nil {
			return fmt.Errorf("growing the tree: %v", err)
		}
		for _, line := range t.Levels(d.Catalog, tcc.depth) {
			fmt.Println(line)
		}
		accuracy, err := t.Test(d.Records)
		if err != nil {
			return fmt.Errorf("testing the tree: %v", err)
		}
		fmt.Printf("training accuracy: %v\n", accuracy)
	case crossValidation:
		cv, err := seedling.CrossValidate(d.Records, d.Catalog, tcc.validation.folds, tcc.prune, opts...)
		if err != nil {
			return fmt.Errorf("cross-validation: %v", err)
		}
		fmt.Printf("mean accuracy: %v\n", cv.Accuracy)
		fmt.Printf("mean live nodes: %v\n", cv.LiveNodes)
		fmt.Printf("mean depth: %v\n", cv.Depth)
	}
	return nil
}

/*
parseValidation takes the value of the validation flag and returns the
validation it describes or an error. Modes take their parameter after a
colon: random:[PERCENT], training and cross:[FOLDS].
*/
func parseValidation(v string) (validation, error) {
	if v == "" {
		return validation{}, fmt.Errorf("required validation flag was not set")
	}
	parsed := strings.Split(v, ":")
	mode := validationMode(parsed[0])
	params := parsed[1:]
	switch mode {
	case trainingValidation:
		if len(params) != 0 {
			return validation{}, fmt.Errorf("training validation takes no parameters")
		}
		return validation{mode: mode}, nil
	case randomValidation:
		if len(params) != 1 {
			return validation{}, fmt.Errorf("random validation requires a training percentage parameter: random:[PERCENT]")
		}
		percent, err := strconv.ParseFloat(params[0], 64)
		if err != nil || percent <= 0 || percent >= 100 {
			return validation{}, fmt.Errorf("invalid training percentage %q: it must be a number between 0 and 100", params[0])
		}
		return validation{mode: mode, percent: percent}, nil
	case crossValidation:
		if len(params) != 1 {
			return validation{}, fmt.Errorf("cross validation requires a fold count parameter: cross:[FOLDS]")
		}
		folds, err := strconv.Atoi(params[0])
		if err != nil || folds < 2 {
			return validation{}, fmt.Errorf("invalid fold count %q: it must be an integer of at least 2", params[0])
		}
		return validation{mode: mode, folds: folds}, nil
	}
	return validation{}, fmt.Errorf("unknown validation mode %s", parsed[0])
}
