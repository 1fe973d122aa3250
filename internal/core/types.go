package core

import "cleancore/pkg/domain"

type (
	EntityType         = domain.EntityType
	Severity           = domain.Severity
	Record             = domain.Record
	Field              = domain.Field
	Ready              = domain.Ready
	Product            = domain.Product
	UserSettings       = domain.UserSettings
	Violation          = domain.Violation
	Result             = domain.Result
	Rule               = domain.Rule
	RulesEngine        = domain.RulesEngine
	RuleViolationError = domain.RuleViolationError
	Clock              = domain.Clock
)

const (
	EntityProduct      = domain.EntityProduct
	EntityUserSettings = domain.EntityUserSettings
)

const (
	SeverityBlock = domain.SeverityBlock
	SeverityWarn  = domain.SeverityWarn
	SeverityLog   = domain.SeverityLog
)
