// Package fixtures holds minimal post-processed basal data for tests and
// demos. Rates stay at or below 5 U/h so a 0..5 rate scale fits them all.
package fixtures

import "github.com/yourloops/basalviz/model"

const (
	oneHour    = 3600000
	fiveMins   = 5 * 60 * 1000
	twentyMins = 20 * 60 * 1000

	midnight         = 0
	ninePM           = midnight - 3*oneHour
	nineTenPM        = ninePM + 2*fiveMins
	nineFifteenPM    = ninePM + 3*fiveMins
	nineTwentyPM     = ninePM + 4*fiveMins
	nineTwentyFivePM = ninePM + 5*fiveMins
	nineThirtyPM     = ninePM + 6*fiveMins
	tenPM            = midnight - 2*oneHour
	oneAM            = oneHour
	threeAM          = 3 * oneHour
	fiveFortyAM      = 5*oneHour + 8*fiveMins
	fiveFortyFiveAM  = 5*oneHour + 9*fiveMins
	fiveFiftyAM      = 5*oneHour + 10*fiveMins
	fiveFiftyFiveAM  = 5*oneHour + 11*fiveMins
)

// ScheduledFlat is a flat 2.25 U/h schedule crossing midnight.
var ScheduledFlat = []model.BasalEvent{
	{
		ID:       "429383ed98244320a6f361bc22b22f88",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      ninePM,
		Duration: oneHour * 3,
		Rate:     2.25,
	},
	{
		ID:       "c535f9be8e7344e4a15db7f7ba02ba71",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      midnight,
		Duration: oneHour * 24,
		Rate:     2.25,
	},
}

// ScheduledNonFlat is an uninterrupted schedule with three rate changes.
var ScheduledNonFlat = []model.BasalEvent{
	{
		ID:       "2eb21eeec78e44b8ab266b25341ddc61",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      ninePM,
		Duration: oneHour * 3,
		Rate:     2.25,
	},
	{
		ID:       "cd9939963ff94ad8b8399fad3e6cbeec",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      midnight,
		Duration: oneHour,
		Rate:     2.25,
	},
	{
		ID:       "d46c5bf13e784d11a8e1ef417675c2b8",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      oneAM,
		Duration: oneHour * 2,
		Rate:     1.75,
	},
	{
		ID:       "937c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM,
		Duration: oneHour * 6,
		Rate:     1.95,
	},
}

// Automated is a run of closed-loop micro-adjustments.
var Automated = []model.BasalEvent{
	{
		ID:       "2eb21eeec78e44b8ab266b25341ddc61",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      ninePM,
		Duration: fiveMins * 2,
		Rate:     2.25,
	},
	{
		ID:       "cd9939963ff94ad8b8399fad3e6cbeec",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineTenPM,
		Duration: fiveMins,
		Rate:     2.05,
	},
	{
		ID:       "d46c5bf13e784d11a8e1ef417675c2b8",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineFifteenPM,
		Duration: fiveMins,
		Rate:     1.75,
	},
	{
		ID:       "937c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineTwentyPM,
		Duration: fiveMins,
		Rate:     1.35,
	},
	{
		ID:       "a37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineTwentyFivePM,
		Duration: fiveMins,
		Rate:     1.35,
	},
	{
		ID:       "b37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineThirtyPM,
		Duration: fiveMins,
		Rate:     1.9,
	},
}

// AutomatedWithSuspend interrupts automated delivery with a 35 minute suspend.
var AutomatedWithSuspend = []model.BasalEvent{
	{
		ID:       "2eb21eeec78e44b8ab266b25341ddc61",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      ninePM,
		Duration: fiveMins * 2,
		Rate:     2.25,
	},
	{
		ID:       "cd9939963ff94ad8b8399fad3e6cbeec",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineTenPM,
		Duration: fiveMins,
		Rate:     2.05,
	},
	{
		ID:       "d46c5bf13e784d11a8e1ef417675c2b8",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineFifteenPM,
		Duration: fiveMins,
		Rate:     1.75,
	},
	{
		ID:       "937c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineTwentyPM,
		Duration: fiveMins,
		Rate:     1.35,
	},
	{
		ID:         "a37c572fed1440ceae0fc430dd8c7183",
		Type:       model.BasalType,
		SubType:    model.SubTypeSuspend,
		UTC:        nineTwentyFivePM,
		Duration:   fiveMins * 7,
		Rate:       0,
		Suppressed: &model.Suppressed{Type: model.BasalType, SubType: model.SubTypeAutomated, Rate: 1},
	},
	{
		ID:       "b37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      tenPM,
		Duration: fiveMins,
		Rate:     1.9,
	},
}

// AutomatedAndScheduled alternates automated, scheduled, automated delivery.
var AutomatedAndScheduled = []model.BasalEvent{
	{
		ID:       "2eb21eeec78e44b8ab266b25341ddc61",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      ninePM,
		Duration: fiveMins * 2,
		Rate:     2.25,
	},
	{
		ID:       "cd9939963ff94ad8b8399fad3e6cbeec",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineTenPM,
		Duration: fiveMins,
		Rate:     2.05,
	},
	{
		ID:       "d46c5bf13e784d11a8e1ef417675c2b8",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineFifteenPM,
		Duration: fiveMins,
		Rate:     1.75,
	},
	{
		ID:       "937c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineTwentyPM,
		Duration: fiveMins,
		Rate:     1.35,
	},
	{
		ID:       "a37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineTwentyFivePM,
		Duration: fiveMins,
		Rate:     1.35,
	},
	{
		ID:       "b37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      nineThirtyPM,
		Duration: fiveMins * 6,
		Rate:     1.9,
	},
	{
		ID:       "c37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      tenPM,
		Duration: oneHour * 2,
		Rate:     1.75,
	},
	{
		ID:       "d37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      midnight,
		Duration: oneHour * 3,
		Rate:     1.55,
	},
	{
		ID:       "e37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM,
		Duration: oneHour*2 + twentyMins*2,
		Rate:     2.25,
	},
	{
		ID:       "037c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      fiveFortyAM,
		Duration: fiveMins,
		Rate:     2.15,
	},
	{
		ID:       "f37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      fiveFortyFiveAM,
		Duration: fiveMins,
		Rate:     2.35,
	},
	{
		ID:       "g37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      fiveFiftyAM,
		Duration: fiveMins,
		Rate:     2.45,
	},
	{
		ID:       "h37c572fed1440ceae0fc430dd8c7183",
		Type:     model.BasalType,
		SubType:  model.SubTypeAutomated,
		UTC:      fiveFiftyFiveAM,
		Duration: fiveMins,
		Rate:     2.35,
	},
}

// SimpleNegativeTemp is a one hour 50% temp inside one schedule segment.
var SimpleNegativeTemp = []model.BasalEvent{
	{
		ID:       "cf100060c7a9458b9120fc3bac311ab8",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      ninePM,
		Duration: oneHour * 3,
		Rate:     2.25,
	},
	{
		ID:       "16bfac32cf8b44cba75b2abef7e61a38",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      midnight,
		Duration: oneHour,
		Rate:     2.25,
	},
	{
		ID:       "dd91c341abd34ab584b916a5b005c3f4",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      oneAM,
		Duration: fiveMins,
		Rate:     1.75,
	},
	{
		ID:         "653a2be67d7543eb89f2c46827eb8049",
		Type:       model.BasalType,
		SubType:    model.SubTypeTemp,
		UTC:        oneAM + fiveMins,
		Duration:   oneHour,
		Rate:       0.875,
		Suppressed: &model.Suppressed{Type: model.BasalType, SubType: model.SubTypeScheduled, Rate: 1.75},
	},
	{
		ID:       "ee9ef0fbf8c147da965318941679a9fa",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM - oneHour + fiveMins,
		Duration: fiveMins * 11,
		Rate:     1.75,
	},
	{
		ID:       "ada4be7bde634253915833e7939527f4",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM,
		Duration: oneHour * 6,
		Rate:     1.95,
	},
}

// SimplePositiveTemp is a one hour 120% temp inside one schedule segment.
var SimplePositiveTemp = []model.BasalEvent{
	{
		ID:       "15cc827a17c343598248c82cc6dcd42c",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      ninePM,
		Duration: oneHour * 3,
		Rate:     2.25,
	},
	{
		ID:       "8dc7d0ec5298471caee55daad232de84",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      midnight,
		Duration: oneHour,
		Rate:     2.25,
	},
	{
		ID:       "b4d9cb8caf434c218cac57dfb4bb33e4",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      oneAM,
		Duration: fiveMins,
		Rate:     1.75,
	},
	{
		ID:         "56e2cab854ca460ab49fcce8b7e4461f",
		Type:       model.BasalType,
		SubType:    model.SubTypeTemp,
		UTC:        oneAM + fiveMins,
		Duration:   oneHour,
		Rate:       2.1,
		Suppressed: &model.Suppressed{Type: model.BasalType, SubType: model.SubTypeScheduled, Rate: 1.75},
	},
	{
		ID:       "e4eb973de02849649dca15ce94709407",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM - oneHour + fiveMins,
		Duration: fiveMins * 11,
		Rate:     1.75,
	},
	{
		ID:       "df2cc06c414943d98e4b9f3203216945",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM,
		Duration: oneHour * 6,
		Rate:     1.95,
	},
}

// SimpleSuspend is a one hour suspend inside one schedule segment.
var SimpleSuspend = []model.BasalEvent{
	{
		ID:       "ce87726e252d4131bfebab3d2d701554",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      ninePM,
		Duration: oneHour * 3,
		Rate:     2.25,
	},
	{
		ID:       "9f20881f15974ea2b423af658189cbf6",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      midnight,
		Duration: oneHour,
		Rate:     2.25,
	},
	{
		ID:       "21582dc803e144c18233047ee4066610",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      oneAM,
		Duration: fiveMins,
		Rate:     1.75,
	},
	{
		ID:         "7ea491a67561400485bc024009ad14ce",
		Type:       model.BasalType,
		SubType:    model.SubTypeSuspend,
		UTC:        oneAM + fiveMins,
		Duration:   oneHour,
		Rate:       0,
		Suppressed: &model.Suppressed{Type: model.BasalType, SubType: model.SubTypeScheduled, Rate: 1.75},
	},
	{
		ID:       "6e1ef18abb874d89a7f80dfbd068e5ca",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM - oneHour + fiveMins,
		Duration: fiveMins * 11,
		Rate:     1.75,
	},
	{
		ID:       "68a5f511014c4c77a8b2c89884170812",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM,
		Duration: oneHour * 6,
		Rate:     1.95,
	},
}

// NegativeTempAcrossScheduled is a 50% temp spanning a schedule change.
var NegativeTempAcrossScheduled = []model.BasalEvent{
	{
		ID:       "02fd6e14e8a14e84b8b8e21eb4122f3a",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      ninePM,
		Duration: oneHour * 3,
		Rate:     2.25,
	},
	{
		ID:       "ac3d148f455d4fd69381b210012f5f17",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      midnight,
		Duration: oneHour,
		Rate:     2.25,
	},
	{
		ID:       "2bee661bca4141fa9a82184fd10b5339",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      oneAM,
		Duration: fiveMins,
		Rate:     1.75,
	},
	{
		ID:         "bda15cb3e8184df5bd4298ccf4fdaf2c",
		Type:       model.BasalType,
		SubType:    model.SubTypeTemp,
		UTC:        oneAM + fiveMins,
		Duration:   oneHour*2 - fiveMins,
		Rate:       0.875,
		Suppressed: &model.Suppressed{Type: model.BasalType, SubType: model.SubTypeScheduled, Rate: 1.75},
	},
	{
		ID:         "c9410aea728c47e181449e6cd9eae2d7",
		Type:       model.BasalType,
		SubType:    model.SubTypeTemp,
		UTC:        threeAM,
		Duration:   twentyMins,
		Rate:       0.975,
		Suppressed: &model.Suppressed{Type: model.BasalType, SubType: model.SubTypeScheduled, Rate: 1.95},
	},
	{
		ID:       "4b4aa223a4404a50bfda7ba76e1e1fda",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM + twentyMins,
		Duration: oneHour*6 - twentyMins,
		Rate:     1.95,
	},
}

// PositiveTempAcrossScheduled is a 125% temp spanning a schedule change.
var PositiveTempAcrossScheduled = []model.BasalEvent{
	{
		ID:       "62cf69bfcc354419afd1e99c45d809f6",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      ninePM,
		Duration: oneHour * 3,
		Rate:     2.25,
	},
	{
		ID:       "0eb1fa7848fb4fadaa3efc87f78d2d22",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      midnight,
		Duration: oneHour,
		Rate:     2.25,
	},
	{
		ID:       "bdc755d0081e4be6a33c43c899fcff10",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      oneAM,
		Duration: fiveMins,
		Rate:     1.75,
	},
	{
		ID:         "6a6615e63f714dcb819857eda7da9d5e",
		Type:       model.BasalType,
		SubType:    model.SubTypeTemp,
		UTC:        oneAM + fiveMins,
		Duration:   oneHour*2 - fiveMins,
		Rate:       2.1875,
		Suppressed: &model.Suppressed{Type: model.BasalType, SubType: model.SubTypeScheduled, Rate: 1.75},
	},
	{
		ID:         "b4b5af3003bd422590a3a25c21a5c355",
		Type:       model.BasalType,
		SubType:    model.SubTypeTemp,
		UTC:        threeAM,
		Duration:   twentyMins,
		Rate:       2.4375,
		Suppressed: &model.Suppressed{Type: model.BasalType, SubType: model.SubTypeScheduled, Rate: 1.95},
	},
	{
		ID:       "9b3c5fd4b95144c9acbf347245e8c0bf",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM + twentyMins,
		Duration: oneHour*6 - twentyMins,
		Rate:     1.95,
	},
}

// SuspendAcrossScheduled is a suspend spanning a schedule change.
var SuspendAcrossScheduled = []model.BasalEvent{
	{
		ID:       "79f6d356ebf240648a567df366783a3f",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      ninePM,
		Duration: oneHour * 3,
		Rate:     2.25,
	},
	{
		ID:       "93c0dfcc67a24d06aa63fdb1d3bc590d",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      midnight,
		Duration: oneHour,
		Rate:     2.25,
	},
	{
		ID:       "ba709dfd1f864d11b8b896799bddbb6d",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      oneAM,
		Duration: fiveMins,
		Rate:     1.75,
	},
	{
		ID:         "9f073a2beee54f979fedebd6d5153282",
		Type:       model.BasalType,
		SubType:    model.SubTypeSuspend,
		UTC:        oneAM + fiveMins,
		Duration:   oneHour*2 - fiveMins,
		Rate:       0,
		Suppressed: &model.Suppressed{Type: model.BasalType, SubType: model.SubTypeScheduled, Rate: 1.75},
	},
	{
		ID:         "eeaf13afb6a149b1af6d6c4d92c4b0f9",
		Type:       model.BasalType,
		SubType:    model.SubTypeSuspend,
		UTC:        threeAM,
		Duration:   twentyMins,
		Rate:       0,
		Suppressed: &model.Suppressed{Type: model.BasalType, SubType: model.SubTypeScheduled, Rate: 1.95},
	},
	{
		ID:       "451b557b6596486ead7d7ddcd23edc84",
		Type:     model.BasalType,
		SubType:  model.SubTypeScheduled,
		UTC:      threeAM + twentyMins,
		Duration: oneHour*6 - twentyMins,
		Rate:     1.95,
	},
}

// Discontinuous holds three scheduled runs separated by two data gaps.
var Discontinuous = []model.BasalEvent{
	{
		ID:               "b357cc381d604bf1b1cb531d59b7cfa0",
		Type:             model.BasalType,
		SubType:          model.SubTypeScheduled,
		UTC:              ninePM,
		Duration:         oneHour*3 - fiveMins,
		Rate:             2.25,
		DiscontinuousEnd: true,
	},
	{
		ID:                 "0b4cfc99ce4e4d40bfc1fe5e73f74046",
		Type:               model.BasalType,
		SubType:            model.SubTypeScheduled,
		UTC:                midnight,
		Duration:           oneHour,
		Rate:               2.25,
		DiscontinuousStart: true,
		DiscontinuousEnd:   true,
	},
	{
		ID:                 "570640bac6d54d4ab6ae8d90cb7f0020",
		Type:               model.BasalType,
		SubType:            model.SubTypeScheduled,
		UTC:                oneAM + fiveMins,
		Duration:           oneHour*23 - fiveMins,
		Rate:               2.25,
		DiscontinuousStart: true,
	},
}
