// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/deptofdefense/icelist/pkg/format"
	"github.com/deptofdefense/icelist/pkg/fs"
	"github.com/deptofdefense/icelist/pkg/lfs"
	"github.com/deptofdefense/icelist/pkg/lister"
	"github.com/deptofdefense/icelist/pkg/log"
	"github.com/deptofdefense/icelist/pkg/s3fs"
	"github.com/deptofdefense/icelist/pkg/template"
)

const (
	IcelistVersion = "1.0.0"
)

const (
	flagAll             = "all"
	flagFilesOnly       = "files-only"
	flagDirectoriesOnly = "directories-only"
	//
	flagSortKey = "sort"
	flagReverse = "reverse"
	//
	flagLong       = "long"
	flagLongFormat = "long-format"
	//
	flagColumns      = "columns"
	flagSingleColumn = "single-column"
	flagMaxWidth     = "width"
	//
	flagTrailingSlash = "trailing-slash"
	flagExtensions    = "extensions"
	flagNoColor       = "no-color"
	//
	flagMaxEntries = "max-entries"
	flagTemplate   = "template"
	//
	flagLogPath = "log"
	flagLogPerm = "log-perm"
	//
	flagAWSPartition          = "aws-partition"
	flagAWSProfile            = "aws-profile"
	flagAWSDefaultRegion      = "aws-default-region"
	flagAWSRegion             = "aws-region"
	flagAWSAccessKeyID        = "aws-access-key-id"
	flagAWSSecretAccessKey    = "aws-secret-access-key"
	flagAWSSessionToken       = "aws-session-token"
	flagAWSInsecureSkipVerify = "aws-insecure-skip-verify"
	flagAWSS3Endpoint         = "aws-s3-endpoint"
	flagAWSS3UsePathStyle     = "aws-s3-use-path-style"
)

func initListFlags(flag *pflag.FlagSet) {
	flag.BoolP(flagAll, "a", false, "include hidden entries")
	flag.BoolP(flagFilesOnly, "f", false, "only list files")
	flag.BoolP(flagDirectoriesOnly, "d", false, "only list directories")
	flag.StringP(flagSortKey, "x", "", "sort in ascending order by a key.  One of: "+strings.Join(lister.SortKeys, ","))
	flag.BoolP(flagReverse, "X", false, "reverse the sort order")
	flag.BoolP(flagLong, "l", false, "list modification time and size for each entry")
	flag.Bool(flagLongFormat, false, "display exact timestamps and sizes")
	flag.Int(flagColumns, 1, "display with at most this many columns")
	flag.BoolP(flagSingleColumn, "1", false, "display as a single column")
	flag.Int(flagMaxWidth, 100, "maximum display width used for the column layout")
	flag.Bool(flagTrailingSlash, false, "append trailing slash to directories")
	flag.BoolP(flagExtensions, "e", false, "highlight extensions")
	flag.Bool(flagNoColor, false, "display without color")
	flag.Int(flagMaxEntries, -1, "maximum directory entries returned")
	flag.String(flagTemplate, "", "path to a listing template used instead of the builtin output")
	flag.String(flagLogPath, "", "path to the diagnostic log output.  Use - for stderr.  Defaults to disabled.")
	flag.String(flagLogPerm, "0600", "file permissions for log output file as unix file mode.")
	initAWSFlags(flag)
}

func initAWSFlags(flag *pflag.FlagSet) {
	flag.String(flagAWSPartition, "", "AWS Partition")
	flag.String(flagAWSProfile, "", "AWS Profile")
	flag.String(flagAWSDefaultRegion, "", "AWS Default Region")
	flag.String(flagAWSRegion, "", "AWS Region (overrides default region)")
	flag.String(flagAWSAccessKeyID, "", "AWS Access Key ID")
	flag.String(flagAWSSecretAccessKey, "", "AWS Secret Access Key")
	flag.String(flagAWSSessionToken, "", "AWS Session Token")
	flag.Bool(flagAWSInsecureSkipVerify, false, "Skip verification of AWS TLS certificate")
	flag.String(flagAWSS3Endpoint, "", "AWS S3 Endpoint URL")
	flag.Bool(flagAWSS3UsePathStyle, false, "Use path-style addressing (default is to use virtual-host-style addressing)")
}

func initViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return v, fmt.Errorf("error binding flag set to viper: %w", err)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config
	return v, nil
}

func initS3Client(v *viper.Viper) *s3.Client {
	accessKeyID := v.GetString(flagAWSAccessKeyID)
	secretAccessKey := v.GetString(flagAWSSecretAccessKey)
	sessionToken := v.GetString(flagAWSSessionToken)
	usePathStyle := v.GetBool(flagAWSS3UsePathStyle)

	region := v.GetString(flagAWSRegion)
	if len(region) == 0 {
		if defaultRegion := v.GetString(flagAWSDefaultRegion); len(defaultRegion) > 0 {
			region = defaultRegion
		}
	}

	config := aws.Config{
		RetryMaxAttempts: 3,
		Region:           region,
	}

	partition := v.GetString(flagAWSPartition)
	if len(partition) == 0 {
		partition = "aws"
	}

	if e := v.GetString(flagAWSS3Endpoint); len(e) > 0 {
		config.EndpointResolverWithOptions = aws.EndpointResolverWithOptionsFunc(func(service string, region string, options ...interface{}) (aws.Endpoint, error) {
			if service == s3.ServiceID {
				endpoint := aws.Endpoint{
					PartitionID:   partition,
					URL:           e,
					SigningRegion: region,
				}
				return endpoint, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
	}

	if len(accessKeyID) > 0 && len(secretAccessKey) > 0 {
		config.Credentials = credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			sessionToken)
	}

	insecureSkipVerify := v.GetBool(flagAWSInsecureSkipVerify)
	if insecureSkipVerify {
		config.HTTPClient = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
				},
			},
		}
	}

	return s3.NewFromConfig(config, func(o *s3.Options) {
		o.UsePathStyle = usePathStyle
	})
}

func checkConfig(v *viper.Viper) error {
	if v.GetBool(flagFilesOnly) && v.GetBool(flagDirectoriesOnly) {
		return &lister.InvalidArgumentError{
			Name:   flagFilesOnly,
			Reason: "cannot be combined with " + flagDirectoriesOnly,
		}
	}
	if sortKey := v.GetString(flagSortKey); len(sortKey) > 0 {
		if !stringSliceContains(lister.SortKeys, sortKey) {
			return &lister.InvalidArgumentError{
				Name:   flagSortKey,
				Reason: fmt.Sprintf("unknown sort key %q, expecting one of: %s", sortKey, strings.Join(lister.SortKeys, ", ")),
			}
		}
	}
	if columns := v.GetInt(flagColumns); columns < 1 {
		return &lister.InvalidArgumentError{
			Name:   flagColumns,
			Reason: "must be greater than or equal to 1",
		}
	}
	if maxWidth := v.GetInt(flagMaxWidth); maxWidth < 1 {
		return &lister.InvalidArgumentError{
			Name:   flagMaxWidth,
			Reason: "must be greater than or equal to 1",
		}
	}
	if maxEntries := v.GetInt(flagMaxEntries); maxEntries < -1 {
		return &lister.InvalidArgumentError{
			Name:   flagMaxEntries,
			Reason: "must be -1 (unlimited) or greater",
		}
	}
	logPerm := v.GetString(flagLogPerm)
	if len(logPerm) == 0 {
		return &lister.InvalidArgumentError{
			Name:   flagLogPerm,
			Reason: "log perm is missing",
		}
	}
	if _, err := strconv.ParseUint(logPerm, 8, 32); err != nil {
		return &lister.InvalidArgumentError{
			Name:   flagLogPerm,
			Reason: fmt.Sprintf("invalid format for log perm: %s", logPerm),
		}
	}
	return nil
}

func stringSliceContains(stringSlice []string, value string) bool {
	for _, x := range stringSlice {
		if value == x {
			return true
		}
	}
	return false
}

func newTraceID() string {
	traceID, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return traceID.String()
}

func initLogger(path string, perm string) (*log.SimpleLogger, error) {

	if len(path) == 0 {
		return log.NewSimpleLogger(io.Discard), nil
	}

	// stdout carries the listing, so diagnostics go to stderr
	if path == "-" {
		return log.NewSimpleLogger(os.Stderr), nil
	}

	fileMode := os.FileMode(0600)

	if len(perm) > 0 {
		fm, err := strconv.ParseUint(perm, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("error parsing file permissions for log file from %q", perm)
		}
		fileMode = os.FileMode(fm)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %q: %w", path, err)
	}

	return log.NewSimpleLogger(f), nil
}

func initFileSystem(ctx context.Context, target string, s3Client *s3.Client, maxEntries int) (fs.FileSystem, error) {
	if strings.HasPrefix(target, "s3://") {
		trimmed := strings.TrimPrefix(target, "s3://")
		parts := strings.SplitN(trimmed, "/", 2)
		bucket := parts[0]
		if len(bucket) == 0 {
			return nil, &lister.InvalidArgumentError{
				Name:   "path",
				Reason: fmt.Sprintf("invalid S3 location %q", target),
			}
		}
		prefix := ""
		if len(parts) == 2 {
			prefix = fs.TrimTrailingForwardSlash(fs.CleanPath(parts[1]))
			if prefix == "/" || prefix == "." {
				prefix = ""
			}
		}
		if len(prefix) > 0 && !fs.CheckPath(prefix) {
			return nil, &lister.InvalidArgumentError{
				Name:   "path",
				Reason: fmt.Sprintf("invalid S3 prefix %q", prefix),
			}
		}
		bucketCreationDate := time.Now()
		listBucketsOutput, err := s3Client.ListBuckets(ctx, &s3.ListBucketsInput{})
		if err == nil {
			for _, b := range listBucketsOutput.Buckets {
				if bucket == aws.ToString(b.Name) {
					bucketCreationDate = aws.ToTime(b.CreationDate)
					break
				}
			}
		}
		return s3fs.NewS3FileSystem(bucket, prefix, s3Client, bucketCreationDate, maxEntries), nil
	}

	absPath, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("error resolving path %q: %w", target, err)
	}
	return lfs.NewLocalFileSystem(absPath), nil
}

func newRootCommand() *cobra.Command {

	rootCommand := &cobra.Command{
		Use:                   `icelist [flags]`,
		DisableFlagsInUseLine: true,
		Short:                 "icelist is a directory listing tool.",
	}

	defaultsCommand := &cobra.Command{
		Use:                   `defaults`,
		DisableFlagsInUseLine: true,
		Short:                 "show defaults",
		SilenceErrors:         true,
		SilenceUsage:          true,
	}

	showDefaultSortKeys := &cobra.Command{
		Use:                   `sort-keys`,
		DisableFlagsInUseLine: true,
		Short:                 "show supported sort keys",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &lister.InvalidArgumentError{
					Name:   "args",
					Reason: "expecting no arguments",
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lister.SortKeys, "\n"))
			return nil
		},
	}

	showDefaultPalette := &cobra.Command{
		Use:                   `palette`,
		DisableFlagsInUseLine: true,
		Short:                 "show default palette as ANSI 256 color codes",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &lister.InvalidArgumentError{
					Name:   "args",
					Reason: "expecting no arguments",
				}
			}
			for _, name := range format.PaletteColorNames {
				fmt.Fprintln(cmd.OutOrStdout(), name+" "+format.PaletteColors[name])
			}
			return nil
		},
	}

	defaultsCommand.AddCommand(showDefaultSortKeys, showDefaultPalette)

	listCommand := &cobra.Command{
		Use:                   `list [flags] [path]`,
		DisableFlagsInUseLine: true,
		Short:                 "list directory contents",
		Example: `list
list --all --sort name /tmp
list --long s3://examplebucket/prefix`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx := cmd.Context()

			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if len(args) > 1 {
				return &lister.InvalidArgumentError{
					Name:   "path",
					Reason: "expecting at most one path argument",
				}
			}

			if errConfig := checkConfig(v); errConfig != nil {
				return errConfig
			}

			logger, err := initLogger(v.GetString(flagLogPath), v.GetString(flagLogPerm))
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}

			target := "."
			if len(args) == 1 {
				target = args[0]
			}

			icelistTraceID := newTraceID()

			_ = logger.Log("Listing directory", map[string]interface{}{
				"icelist_trace_id": icelistTraceID,
				"path":             target,
			})

			maxEntries := v.GetInt(flagMaxEntries)

			var s3Client *s3.Client
			if strings.HasPrefix(target, "s3://") {
				s3Client = initS3Client(v)
			}

			fsys, err := initFileSystem(ctx, target, s3Client, maxEntries)
			if err != nil {
				return err
			}

			input := &lister.ListInput{
				Path:            target,
				All:             v.GetBool(flagAll),
				FilesOnly:       v.GetBool(flagFilesOnly),
				DirectoriesOnly: v.GetBool(flagDirectoriesOnly),
				SortKey:         v.GetString(flagSortKey),
				Reverse:         v.GetBool(flagReverse),
				MaxEntries:      maxEntries,
			}

			entries, err := lister.List(ctx, fsys, input)
			if err != nil {
				_ = logger.Log("Error listing directory", map[string]interface{}{
					"icelist_trace_id": icelistTraceID,
					"path":             target,
					"error":            err.Error(),
				})
				return err
			}

			_ = logger.Log("Listed directory", map[string]interface{}{
				"icelist_trace_id": icelistTraceID,
				"path":             target,
				"entries":          len(entries),
			})

			out := cmd.OutOrStdout()

			if templatePath := v.GetString(flagTemplate); len(templatePath) > 0 {
				t, err := template.ParseFile("listing", templatePath)
				if err != nil {
					return fmt.Errorf("error parsing listing template: %w", err)
				}
				executeError := t.Execute(out, map[string]interface{}{
					"Name":             target,
					"DirectoryEntries": entries,
					"IcelistVersion":   IcelistVersion,
				})
				if executeError != nil {
					return fmt.Errorf("error rendering listing template: %w", executeError)
				}
				return nil
			}

			palette := format.DefaultPalette()
			if v.GetBool(flagNoColor) {
				palette = format.NoColorPalette()
			}

			formatter := &format.Formatter{
				Palette:       palette,
				TrailingSlash: v.GetBool(flagTrailingSlash),
				Extensions:    v.GetBool(flagExtensions),
				Long:          v.GetBool(flagLongFormat),
				Now:           time.Now(),
			}

			if v.GetBool(flagLong) {
				tbl := format.NewTable(out, "MODIFIED", "SIZE", "NAME")
				for _, e := range entries {
					tbl.AddRow(formatter.ModTimeCell(e), formatter.SizeCell(e), formatter.Name(e))
				}
				tbl.Print()
				return nil
			}

			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, formatter.Name(e))
			}

			columns := v.GetInt(flagColumns)
			if v.GetBool(flagSingleColumn) {
				columns = 1
			}

			for _, line := range format.Columns(names, columns, v.GetInt(flagMaxWidth)) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	initListFlags(listCommand.Flags())

	versionCommand := &cobra.Command{
		Use:                   `version`,
		DisableFlagsInUseLine: true,
		Short:                 "show version",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &lister.InvalidArgumentError{
					Name:   "args",
					Reason: "expecting no arguments",
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), IcelistVersion)
			return nil
		},
	}

	rootCommand.AddCommand(defaultsCommand, listCommand, versionCommand)

	return rootCommand
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "icelist: "+err.Error())
		_, _ = fmt.Fprintln(os.Stderr, "Try icelist --help for more information.")
		os.Exit(lister.ExitCode(err))
	}
}
