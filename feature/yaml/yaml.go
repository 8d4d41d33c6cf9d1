/*
Package yaml provides methods to parse feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/seedling/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a feature.Builder with the features declared in it or an error.
The YML is expected to be an object containing a features property. The value for this
should be an ordered mapping with a property for each feature with its name and either a
string value of 'continuous' or 'bucketed' for bucketed features or a list of valid values
for discrete features. Features are declared in document order.

An optional label property names the feature to predict. When absent the last
feature in the mapping is the label.
*/
func ReadFeatures(md []byte) (*feature.Builder, error) {
	metadata := struct {
		Features yaml.MapSlice
		Label    string
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if len(metadata.Features) == 0 {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	b := feature.NewBuilder()
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		switch values := item.Value.(type) {
		case string:
			if values != "continuous" && values != "bucketed" {
				return nil, fmt.Errorf("invalid feature type %q for feature %s", values, fn)
			}
			b.AddBucketed(fn)
		case []interface{}:
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			b.AddDiscrete(fn, stringVs)
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T for feature %s", item.Value, fn)
		}
	}
	if metadata.Label != "" && !b.MoveToLabel(metadata.Label) {
		return nil, fmt.Errorf("label feature '%s' is not defined", metadata.Label)
	}
	return b, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a feature.Builder or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) (*feature.Builder, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	b, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return b, err
}
