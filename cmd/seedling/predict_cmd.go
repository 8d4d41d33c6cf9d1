package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/seedling"
	"github.com/pbanos/seedling/dataset/inputsample"
	"github.com/pbanos/seedling/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*sourceCmdConfig
}

type stdoutFeatureValueRequester struct {
	w io.Writer
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{&sourceCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of a sample answering questions",
		Long:  `Grow a tree from every record in the file and use it to predict the class of a sample whose feature values are read from STDIN`,
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
			config.Logf("Growing tree from %d records...", d.Count())
			t, err := seedling.New(d.Catalog, seedling.WithLogger(config.logger)).Grow(d.Records)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			class, err := predict(os.Stdin, stdoutFeatureValueRequester{os.Stdout}, d.Catalog, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			fmt.Printf("Predicted %s is %s\n", d.Catalog.Label().Name(), d.Catalog.Label().Label(class))
		},
	}
	addSourceFlags(cmd, config.sourceCmdConfig)
	return cmd
}

type predictor interface {
	Predict(feature.Sample) (int, error)
}

func predict(r io.Reader, fvr inputsample.FeatureValueRequester, c *feature.Catalog, p predictor) (int, error) {
	sample, err := inputsample.Read(r, c, fvr)
	if err != nil {
		return 0, fmt.Errorf("reading sample: %v", err)
	}
	return p.Predict(sample)
}

func (sfvr stdoutFeatureValueRequester) RequestValueFor(f feature.Feature) error {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		fmt.Fprintf(sfvr.w, "Please provide the sample's %s:\n(valid values are %v, %s if undefined)\n", f.Name(), f.AvailableValues()[:f.Size()-1], feature.UnknownValue)
	case *feature.BucketedFeature:
		fmt.Fprintf(sfvr.w, "Please provide the sample's %s:\n(valid values are non-negative numbers)\n", f.Name())
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}

func (sfvr stdoutFeatureValueRequester) RejectValueFor(f feature.Feature, value string) error {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		fmt.Fprintf(sfvr.w, "%q is not a valid value for the sample's %s. Please provide one of %v.\n", value, f.Name(), f.AvailableValues())
	case *feature.BucketedFeature:
		fmt.Fprintf(sfvr.w, "%q is not a valid value for the sample's %s. Please provide a non-negative number.\n", value, f.Name())
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}
