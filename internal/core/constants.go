package core

import "time"

const (
	Version       = "0.1.0"
	ConfigVersion = "1.0"

	ToolPMDumpLog = "pmdumplog"
	ToolPMRep     = "pmrep"
	ToolPCP       = "pcp"

	DefaultPMRepConfFile       = "/etc/pcp/pmrep/ora_pmrep.conf"
	DefaultTimeoutSeconds      = 300
	DefaultLabelTimeoutSeconds = 60
	DefaultOutputPrefix        = "pcp_analysis"
	DefaultRetentionDays       = 30

	ErrorLogName = "errors"

	TimestampFormat = "2006-01-02 15:04:05"

	DefaultTimeout      = DefaultTimeoutSeconds * time.Second
	DefaultLabelTimeout = DefaultLabelTimeoutSeconds * time.Second
)

var RequiredTools = []string{
	ToolPMDumpLog,
	ToolPMRep,
	ToolPCP,
}
