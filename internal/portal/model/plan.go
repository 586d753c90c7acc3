package model

type MagicPillPlan struct {
	PlanID      int    `json:"planId" bson:"plan_id"`
	PlanName    string `json:"planName" bson:"plan_name"`
	PlanDetails string `json:"planDetails" bson:"plan_details"`
}
