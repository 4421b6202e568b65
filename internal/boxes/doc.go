// Package boxes turns raw text-detection output into well-formed text boxes.
package boxes
