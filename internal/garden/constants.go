package garden

import "time"

// Grid and resource limits
const (
	GridSize = 9

	MaxWater              = 5
	WaterRechargeInterval = 120 * time.Minute

	InitialLevel = 1
	InitialGold  = 0
	InitialWater = MaxWater
)

// Growth tuning
const (
	// MinGrowthFactor is the floor watering can shrink a growth time to
	MinGrowthFactor = 0.3
	// StageCount is the number of equal time slices a growth period is divided into
	StageCount = 4
)

// Visitor tuning
const (
	MaxDailyRandomVisits = 2
	CoinFlipProbability  = 0.5
)

// Mail timing
const (
	OwlMailDelay = 72 * time.Hour
)

// DateLayout is the local calendar-date format of the daily counter
const DateLayout = "2006-01-02"

// Welcome mail content
const (
	WelcomeMailTitle     = "Welcome gift has arrived!"
	WelcomeMailFrom      = "Garden Keeper"
	WelcomeMailBody      = "Welcome to your garden!\nWe prepared a small present.\nLet's grow a lovely garden together!"
	WelcomeRewardSeedQty = 3
)

// Owl mail content
const (
	OwlMailTitle = "A letter tied to a feather"
	OwlMailFrom  = "Hoot"
	OwlMailBody  = "I have been watching your garden from the old oak.\nRead this and I may come down to say hello."
)

// Operation names carried on state-changed events
const (
	OpSpendGold          = "spend_gold"
	OpAddGold            = "add_gold"
	OpUseWater           = "use_water"
	OpWaterPlant         = "water_plant"
	OpRechargeWater      = "recharge_water"
	OpPlantSeed          = "plant_seed"
	OpUseSeed            = "use_seed"
	OpPlantFromInventory = "plant_from_inventory"
	OpHarvestPlant       = "harvest_plant"
	OpCollectHarvest     = "collect_harvest"
	OpCheckNewVisitors   = "check_new_visitors"
	OpClaimVisitor       = "claim_visitor"
	OpCheckRandom        = "check_random_visitors"
	OpResetDaily         = "reset_daily_random_visits"
	OpVisitCount         = "increment_visit_count"
	OpInitMail           = "init_first_visit_mail"
	OpReadMail           = "read_mail"
	OpClaimMail          = "claim_mail_reward"
	OpOwlMail            = "check_owl_mail"
	OpBuySeed            = "buy_seed"
	OpToggleDecoration   = "toggle_decoration"
	OpCollectionSeen     = "mark_collection_seen"
	OpUpdateSettings     = "update_settings"
	OpStart              = "start"
	OpForeground         = "foreground"
)

// Log messages
const (
	LogMsgFollowUpScheduleFailed = "Failed to schedule random visitor follow-up"
	LogMsgPublishFailed          = "Failed to publish garden event"
	LogMsgStateLoadFailed        = "Failed to load saved garden, starting fresh"
	LogMsgNoSavedState           = "No saved garden found, starting fresh"
	LogMsgVisitorArrived         = "Visitor arrived"
	LogMsgVisitorClaimed         = "Visitor claimed"
	LogMsgDailyReset             = "Daily random visit counter reset"
	LogMsgUnknownVisitor         = "Visitor has no catalog entry, removing without gift"
)
