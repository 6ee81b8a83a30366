/*
Package config holds the validated settings of a regroup run.

There is no configuration file: every value comes from command line flags
and is checked by Validate before anything touches the filesystem.

🔧 Fields:
- Source and Expressions are always required
- Output is required unless DryRun is set
- Prefix defaults to empty, so group folders are named 1, 2, 3 ...
- Format only affects the dry run listing

🔍 Example:

	cfg := config.Default()
	cfg.Source = "photos"
	cfg.Expressions = []string{`\.jpe?g$`, `\.png$`}
	cfg.Output = "sorted"
	if err := cfg.Validate(); err != nil {
		return err
	}
*/
package config
