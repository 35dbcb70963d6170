// Package memory provides process-lifetime implementations of driven ports.
// Nothing here touches the disk: ConfigStore backs --no-config runs and
// tests, ReportStore keeps the report history of a watch session.
package memory
